package client

import (
	"context"
	"fmt"

	"github.com/snazarov/aclsim/internal/audit"
	"github.com/snazarov/aclsim/internal/config"
	"github.com/snazarov/aclsim/internal/logger"
	"github.com/snazarov/aclsim/internal/scenario"
	"github.com/snazarov/aclsim/internal/service"
	"github.com/snazarov/aclsim/internal/tui"
)

type App struct {
	services *service.Services
	ui       *tui.TUI
	audit    *audit.Logger
	logger   *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	auditLog, err := audit.NewLogger(cfg.Audit.Path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	services := service.NewServices(cfg, auditLog, log)

	walkthrough := scenario.Default()
	if cfg.Scenario.Path != "" {
		walkthrough, err = scenario.Load(cfg.Scenario.Path)
		if err != nil {
			return nil, fmt.Errorf("load walkthrough: %w", err)
		}
	}
	runner := scenario.NewRunner(walkthrough, services.Simulator, log)

	ui, err := tui.New(services, runner, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		services: services,
		ui:       ui,
		audit:    auditLog,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	defer a.audit.Close()

	ctx := a.logger.Logger.WithContext(context.Background())
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("session finished")
	return nil
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snazarov/aclsim/internal/config"
	"github.com/snazarov/aclsim/internal/logger"
	"github.com/snazarov/aclsim/internal/scenario"
	"github.com/snazarov/aclsim/internal/service"
)

// TUI is the terminal presentation layer. It renders the simulator's state
// and forwards user intents (role selection, button-equivalent key presses)
// into the Simulator; all rules live behind that interface.
type TUI struct {
	sim    service.Simulator
	runner *scenario.Runner
	cfg    config.App
}

func New(services *service.Services, runner *scenario.Runner, cfg config.App, _ *logger.Logger) (*TUI, error) {
	return &TUI{sim: services.Simulator, runner: runner, cfg: cfg}, nil
}

// Run drives the interactive session until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.sim, t.runner, t.cfg)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

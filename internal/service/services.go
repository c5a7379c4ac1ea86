package service

import (
	"github.com/snazarov/aclsim/internal/audit"
	"github.com/snazarov/aclsim/internal/config"
	"github.com/snazarov/aclsim/internal/engine"
	"github.com/snazarov/aclsim/internal/logger"
	"github.com/snazarov/aclsim/internal/store"
	"github.com/snazarov/aclsim/internal/utils"
)

type Services struct {
	Simulator Simulator
}

func NewServices(cfg *config.StructuredConfig, auditLog *audit.Logger, logger *logger.Logger) *Services {
	eng := engine.New(utils.NewUUIDGenerator(), engine.SystemClock(), cfg.App.ContractIdentity)

	return &Services{
		Simulator: NewSimulatorService(
			eng,
			store.NewCiphertextCollection(),
			store.NewEventLog(cfg.Log.EventLogCapacity),
			auditLog,
			logger,
		),
	}
}

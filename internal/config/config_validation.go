// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package config

import "github.com/snazarov/aclsim/models"

// DefaultEventLogCapacity is the number of events the rolling log retains
// when no explicit capacity is configured.
const DefaultEventLogCapacity = 20

// applyDefaults fills in the zero-valued fields of the merged config so a
// completely unconfigured run is still usable.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.ContractIdentity == "" {
		cfg.App.ContractIdentity = models.IdentityContract
	}
	if cfg.App.DefaultOwner == "" {
		cfg.App.DefaultOwner = models.IdentityOwnerAlice
	}
	if cfg.App.DefaultPayload == "" {
		cfg.App.DefaultPayload = "balance:1000"
	}
	if cfg.Log.EventLogCapacity == 0 {
		cfg.Log.EventLogCapacity = DefaultEventLogCapacity
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ContractIdentity == "" || cfg.App.DefaultOwner == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Log.EventLogCapacity < 1 {
		return ErrInvalidLogConfigs
	}

	return nil
}

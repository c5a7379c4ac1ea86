// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package config

// StructuredConfig is the top-level configuration container for the aclsim
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version
	// and the identities used by the default grant policy.
	App App `envPrefix:"APP_"`

	// Log holds settings for the in-memory event log shown by the UI.
	Log Log `envPrefix:"LOG_"`

	// Audit holds settings for the optional append-only audit file.
	Audit Audit `envPrefix:"AUDIT_"`

	// Scenario holds settings for the guided walkthrough.
	Scenario Scenario `envPrefix:"SCENARIO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown on the welcome screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ContractIdentity is the platform/contract identity that receives a
	// permanent grant on every newly created ciphertext (the "allow this
	// contract" default policy). Defaults to "contract".
	// Env: APP_CONTRACT_IDENTITY
	ContractIdentity string `env:"CONTRACT_IDENTITY"`

	// DefaultOwner is the identity preselected as the creating principal
	// when the UI encrypts a new value. Defaults to "owner-alice".
	// Env: APP_DEFAULT_OWNER
	DefaultOwner string `env:"DEFAULT_OWNER"`

	// DefaultPayload is the stand-in plaintext used for newly encrypted
	// values when the UI does not ask for one. Defaults to "balance:1000".
	// Env: APP_DEFAULT_PAYLOAD
	DefaultPayload string `env:"DEFAULT_PAYLOAD"`
}

// Log holds settings for the rolling in-memory event log.
type Log struct {
	// EventLogCapacity is the maximum number of events retained by the
	// event log; the oldest entry is evicted beyond it. Defaults to 20.
	// Env: LOG_EVENT_LOG_CAPACITY
	EventLogCapacity int `env:"EVENT_LOG_CAPACITY"`
}

// Audit holds settings for the optional append-only audit sink.
type Audit struct {
	// Path is the file path for the JSONL audit log. When empty, audit
	// output is disabled; the simulation itself is unaffected.
	// Env: AUDIT_PATH
	Path string `env:"PATH"`
}

// Scenario holds settings for the guided walkthrough loaded at startup.
type Scenario struct {
	// Path is an optional YAML file describing a custom walkthrough. When
	// empty, the embedded default walkthrough is used.
	// Env: SCENARIO_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied after merging, so a zero config is always usable.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

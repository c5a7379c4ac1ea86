package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-contract-identity identity auto-granted on every new ciphertext
//	-owner default creating principal for new ciphertexts
//	-payload default stand-in plaintext for new ciphertexts
//	-event-log-capacity maximum retained event log entries
//	-audit-log path to the append-only JSONL audit file
//	-scenario path to a YAML walkthrough file
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var contractIdentity string
	var defaultOwner string
	var defaultPayload string
	var eventLogCapacity int
	var auditPath string
	var scenarioPath string
	var jsonConfigPath string

	flag.StringVar(&contractIdentity, "contract-identity", "", "Identity auto-granted on creation")
	flag.StringVar(&defaultOwner, "owner", "", "Default creating principal")
	flag.StringVar(&defaultPayload, "payload", "", "Default stand-in plaintext")
	flag.IntVar(&eventLogCapacity, "event-log-capacity", 0, "Max retained event log entries")
	flag.StringVar(&auditPath, "audit-log", "", "JSONL audit file path")
	flag.StringVar(&scenarioPath, "scenario", "", "YAML walkthrough file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ContractIdentity: contractIdentity,
			DefaultOwner:     defaultOwner,
			DefaultPayload:   defaultPayload,
		},
		Log: Log{
			EventLogCapacity: eventLogCapacity,
		},
		Audit: Audit{
			Path: auditPath,
		},
		Scenario: Scenario{
			Path: scenarioPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}

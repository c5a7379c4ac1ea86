package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version          string `json:"version"`
		ContractIdentity string `json:"contract_identity"`
		DefaultOwner     string `json:"default_owner"`
		DefaultPayload   string `json:"default_payload"`
	} `json:"app,omitempty"`

	Log struct {
		EventLogCapacity int `json:"event_log_capacity"`
	} `json:"log,omitempty"`

	Audit struct {
		Path string `json:"path"`
	} `json:"audit,omitempty"`

	Scenario struct {
		Path string `json:"path"`
	} `json:"scenario,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:          jsonCfg.App.Version,
			ContractIdentity: jsonCfg.App.ContractIdentity,
			DefaultOwner:     jsonCfg.App.DefaultOwner,
			DefaultPayload:   jsonCfg.App.DefaultPayload,
		},
		Log: Log{
			EventLogCapacity: jsonCfg.Log.EventLogCapacity,
		},
		Audit: Audit{
			Path: jsonCfg.Audit.Path,
		},
		Scenario: Scenario{
			Path: jsonCfg.Scenario.Path,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

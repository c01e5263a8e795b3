package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eventclient/internal/flagx"
	"github.com/dmitrijs2005/eventclient/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Absent
// fields keep their defaults.
type JsonConfig struct {
	Addr                  *string         `json:"addr"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	SeedDemo              *bool           `json:"seed_demo"`
	LogLevel              *string         `json:"log_level"`
}

// parseJson overlays config with the JSON file named by -c or -config.
func parseJson(config *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFileFlag(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	if c.Addr != nil {
		config.Addr = *c.Addr
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.SeedDemo != nil {
		config.SeedDemo = *c.SeedDemo
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eventclient/internal/flagx"
	"github.com/dmitrijs2005/eventclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value untouched.
type JsonConfig struct {
	BaseURL          *string         `json:"base_url"`
	Env              *string         `json:"env"`
	DataDir          *string         `json:"data_dir"`
	StorageSecret    *string         `json:"storage_secret"`
	ChatPollInterval *timex.Duration `json:"chat_poll_interval"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.Env, jc.Env)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.StorageSecret, jc.StorageSecret)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.ChatPollInterval != nil {
		cfg.ChatPollInterval = jc.ChatPollInterval.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "EVENTCLIENT"

// parseEnv overlays cfg with EVENTCLIENT_* variables. Variables from the
// given .env files are loaded first without overriding the real
// environment; missing files are ignored.
//
//	EVENTCLIENT_BASE_URL, EVENTCLIENT_ENV, EVENTCLIENT_DATA_DIR,
//	EVENTCLIENT_STORAGE_SECRET, EVENTCLIENT_CHAT_POLL_INTERVAL ("2s"),
//	EVENTCLIENT_LOG_LEVEL
func parseEnv(cfg *Config, envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if v.IsSet("base_url") {
		cfg.BaseURL = v.GetString("base_url")
	}
	if v.IsSet("env") {
		cfg.Env = v.GetString("env")
	}
	if v.IsSet("data_dir") {
		cfg.DataDir = v.GetString("data_dir")
	}
	if v.IsSet("storage_secret") {
		cfg.StorageSecret = v.GetString("storage_secret")
	}
	if v.IsSet("chat_poll_interval") {
		cfg.ChatPollInterval = v.GetDuration("chat_poll_interval")
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
	return nil
}

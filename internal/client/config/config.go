package config

import (
	"os"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds runtime settings of the event client.
type Config struct {
	// BaseURL is the backend root every route is joined to.
	BaseURL string
	// Env is "production" or "development"; production hides error details
	// from the user and logs JSON instead of console output.
	Env string
	// DataDir holds the local database.
	DataDir string
	// StorageSecret is mixed into the key that seals the stored session.
	// Empty means the host name is used.
	StorageSecret    string
	ChatPollInterval time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.Env = EnvDevelopment
	c.DataDir = ".eventclient"
	c.StorageSecret = ""
	c.ChatPollInterval = time.Second
	c.LogLevel = "info"
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Secret returns StorageSecret, falling back to the host name.
func (c *Config) Secret() string {
	if c.StorageSecret != "" {
		return c.StorageSecret
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "eventclient"
	}
	return host
}

// LoadConfig builds a Config from defaults, then the environment, then an
// optional JSON file, then command-line flags. Later sources win.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], ".env")
}

func load(args []string, envFiles ...string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, envFiles...); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

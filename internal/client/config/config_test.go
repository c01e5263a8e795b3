package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.BaseURL)
	assert.Equal(t, EnvDevelopment, c.Env)
	assert.Equal(t, ".eventclient", c.DataDir)
	assert.Equal(t, time.Second, c.ChatPollInterval)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.IsProduction())
}

func TestSecret_FallsBackToHostname(t *testing.T) {
	c := Config{StorageSecret: "s"}
	assert.Equal(t, "s", c.Secret())

	c.StorageSecret = ""
	assert.NotEmpty(t, c.Secret())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("EVENTCLIENT_DATA_DIR=/from/dotenv\nEVENTCLIENT_LOG_LEVEL=debug\n"), 0o600))

	jsonFile := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"base_url":           "http://json:1",
		"chat_poll_interval": "3s",
	})

	t.Setenv("EVENTCLIENT_ENV", "production")
	t.Setenv("EVENTCLIENT_BASE_URL", "http://env:1")
	// registered with t.Setenv so the values loaded from .env are cleaned up
	for _, k := range []string{"EVENTCLIENT_DATA_DIR", "EVENTCLIENT_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := load([]string{"-c", jsonFile, "-i", "7"}, envFile)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env, "env variable")
	assert.Equal(t, "/from/dotenv", cfg.DataDir, ".env file")
	assert.Equal(t, "debug", cfg.LogLevel, ".env file")
	assert.Equal(t, "http://json:1", cfg.BaseURL, "json beats env")
	assert.Equal(t, 7*time.Second, cfg.ChatPollInterval, "flag beats json")
	assert.True(t, cfg.IsProduction())
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	cfg, err := load(nil, filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.BaseURL)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://h:9090", "-e", "production", "-d", "/tmp/x", "-i", "10", "-l", "warn"},
			want: Config{BaseURL: "http://h:9090", Env: "production", DataDir: "/tmp/x", ChatPollInterval: 10 * time.Second, LogLevel: "warn"},
		},
		{
			name: "unrelated flags ignored",
			args: []string{"-c", "cfg.json", "-a", "http://h:1"},
			want: Config{BaseURL: "http://h:1"},
		},
		{name: "bad interval", args: []string{"-i", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

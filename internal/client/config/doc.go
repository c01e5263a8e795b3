// Package config loads runtime configuration for the event client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: a .env file, then EVENTCLIENT_* variables (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "2s" or integer
// nanoseconds:
//
//	{
//	  "base_url": "https://api.example.com",
//	  "env": "production",
//	  "data_dir": "/var/lib/eventclient",
//	  "chat_poll_interval": "1s",
//	  "log_level": "warn"
//	}
package config

package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   backend base URL
//	-e string   environment (production|development)
//	-d string   data directory
//	-i int      chat poll interval (in seconds)
//	-l string   log level
//
// Only these flags are picked out of args (flagx.FilterArgs), so other
// stages' flags such as -c do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-e", "-d", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	fs.StringVar(&cfg.Env, "e", cfg.Env, "environment (production|development)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	pollSeconds := fs.Int("i", int(cfg.ChatPollInterval.Seconds()), "chat poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.ChatPollInterval = time.Duration(*pollSeconds) * time.Second
		}
	})
	return nil
}

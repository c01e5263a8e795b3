package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-l string   log level
//	-seed bool  create demo data at startup
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-l", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.SeedDemo, "seed", config.SeedDemo, "seed demo data")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	return nil
}

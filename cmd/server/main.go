package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/eventclient/internal/buildinfo"
	"github.com/dmitrijs2005/eventclient/internal/logging"
	"github.com/dmitrijs2005/eventclient/internal/server"
	"github.com/dmitrijs2005/eventclient/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, false)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}

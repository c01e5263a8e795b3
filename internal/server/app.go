// Package server wires and runs the development backend: an in-memory
// users and events service behind the JSON API the client talks to.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/eventclient/internal/logging"
	"github.com/dmitrijs2005/eventclient/internal/server/config"
	"github.com/dmitrijs2005/eventclient/internal/server/events"
	"github.com/dmitrijs2005/eventclient/internal/server/httpapi"
	"github.com/dmitrijs2005/eventclient/internal/server/users"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	userService  *users.Service
	eventService *events.Service
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	us := users.NewService(users.NewMemoryRepository(), c)
	es := events.NewService(events.NewMemoryRepository(), us)

	app := &App{config: c, logger: logger, userService: us, eventService: es}

	if c.SeedDemo {
		if err := Seed(ctx, us, es); err != nil {
			return nil, fmt.Errorf("seed error: %w", err)
		}
		logger.Info(ctx, "Demo data seeded", "username", DemoUsername)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.Addr, app.logger, app.userService, app.eventService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}

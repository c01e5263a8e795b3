// Package httpapi exposes the development server's users and events over
// the JSON API the client speaks.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/logging"
	"github.com/dmitrijs2005/eventclient/internal/server/events"
	"github.com/dmitrijs2005/eventclient/internal/server/users"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	users   *users.Service
	events  *events.Service
	logger  logging.Logger
	echo    *echo.Echo
}

func NewServer(address string, l logging.Logger, us *users.Service, es *events.Service) *Server {
	s := &Server{
		address: address,
		users:   us,
		events:  es,
		logger:  l.With("module", "http_server"),
	}
	s.echo = s.routes()
	return s
}

// Handler returns the routed API, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler
	e.Use(s.requestLogger)

	a := e.Group("/auth")
	a.POST("/login", s.login)
	a.POST("/register", s.register)
	a.POST("/reset", s.reset)

	e.GET("/user/avatar/:id", s.avatar)

	u := e.Group("/user", s.requireToken)
	u.GET("/info", s.currentUser)
	u.GET("/info/:id", s.userInfo)
	u.GET("/details/:id", s.userDetails)
	u.POST("/edit", s.editSelf)

	ev := e.Group("/event", s.requireToken)
	ev.GET("/info/:id", s.eventInfo)
	ev.GET("/info/:id/media", s.eventMedia)
	ev.GET("/info/:id/messages", s.eventMessages)
	ev.GET("/relevantEvents", s.relevantEvents)
	ev.GET("/find", s.findEvents)
	ev.GET("/tags", s.tags)
	ev.POST("/create", s.createEvent)
	ev.POST("/join", s.joinEvent)
	ev.POST("/close", s.closeEvent)
	ev.POST("/message", s.sendMessage)

	e.GET("/info/all_media", s.allMedia, s.requireToken)

	return e
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

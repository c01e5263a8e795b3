package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/common"
	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

// requireToken resolves the bearer token to a user ID stored on the
// context under userIDKey.
func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		userID, err := s.users.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		// A token for a user that no longer exists is as good as none.
		if _, err := s.users.Get(c.Request().Context(), userID); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

func userID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		s.logger.Debug(req.Context(), "request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start),
		)
		return nil
	}
}

// errorHandler maps service errors onto status codes.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		msg = http.StatusText(code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	case errors.Is(err, common.ErrorNotFound):
		code, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		code, msg = http.StatusConflict, err.Error()
	case errors.Is(err, common.ErrorInvalidArgument):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorUnauthorized):
		code, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrorForbidden):
		code, msg = http.StatusForbidden, err.Error()
	default:
		s.logger.Error(c.Request().Context(), "handler failed", "path", c.Path(), "error", err)
	}

	if err := c.JSON(code, echo.Map{"error": msg}); err != nil {
		s.logger.Error(c.Request().Context(), "write error response", "error", err)
	}
}

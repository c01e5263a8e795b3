package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/labstack/echo/v4"
)

func (s *Server) login(c echo.Context) error {
	var req client.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := s.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	s.logger.Info(c.Request().Context(), "Logged in", "username", req.Username)
	return c.JSON(http.StatusOK, client.AuthResponse{Token: token})
}

func (s *Server) register(c echo.Context) error {
	var req client.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := s.users.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	s.logger.Info(c.Request().Context(), "Registered", "username", req.Username)
	return c.JSON(http.StatusOK, client.AuthResponse{Token: token})
}

func (s *Server) reset(c echo.Context) error {
	var req client.ResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := s.users.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

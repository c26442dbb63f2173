package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/api"
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/validation"
)

// Server wires the task API and auth service into an HTTP handler tree.
type Server struct {
	echo           *echo.Echo
	config         *config.Config
	api            api.API
	authService    *auth.Service
	loginValidator *validation.LoginValidator
}

// New creates a new Server with all routes registered.
func New(cfg *config.Config, apiInstance api.API, authService *auth.Service) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{
		echo:           e,
		config:         cfg,
		api:            apiInstance,
		authService:    authService,
		loginValidator: validation.NewLoginValidator(),
	}
	s.registerRoutes()

	return s
}

// Start begins serving on the configured address. It blocks until the
// server stops.
func (s *Server) Start() error {
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout
	return s.echo.Start(s.config.Server.Addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

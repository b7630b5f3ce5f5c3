package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"glamour-lush-server/cmd/api/di"
	ginrouter "glamour-lush-server/internal/adapter/gin/router"
	"glamour-lush-server/internal/config"
)

// Server wraps the HTTP server serving the storefront API.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance wired from the container.
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	router := ginrouter.SetupRouter(
		c.Handlers,
		c.Tokens,
		c.UserUC,
		cfg.App.AllowedOrigins,
		l,
	)

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
	if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

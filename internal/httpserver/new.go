package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	consoleHTTP "sentellent-console/internal/console/delivery/http"
	"sentellent-console/internal/middleware"
	"sentellent-console/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	consoleHandler consoleHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ConsoleHandler consoleHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              cfg.Logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		consoleHandler: cfg.ConsoleHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.consoleHandler == nil {
		return errors.New("console handler is required")
	}
	return nil
}

package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"extensible-calendar/config"
	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/metric"
	"extensible-calendar/internal/model"
	"extensible-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Observability
	metrics   *metric.Metrics
	rateLimit config.RateLimitConfig

	// Agenda domain
	agendaUC agenda.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	Metrics   *metric.Metrics
	RateLimit config.RateLimitConfig

	AgendaUseCase agenda.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		metrics:     cfg.Metrics,
		rateLimit:   cfg.RateLimit,
		agendaUC:    cfg.AgendaUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
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
	if srv.metrics == nil {
		return errors.New("metrics is required")
	}
	if srv.agendaUC == nil {
		return errors.New("agenda use case is required")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"extensible-calendar/config"
	_ "extensible-calendar/docs" // Swagger docs
	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/agenda/usecase"
	"extensible-calendar/internal/httpserver"
	"extensible-calendar/internal/metric"
	"extensible-calendar/pkg/log"
)

// @title       Extensible Calendar API
// @description Calendars with conflict-free scheduling, recurring events, cross-calendar copy and CSV export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Extensible Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	metrics := metric.New()

	// 4. Agenda domain
	agendaUC := usecase.New(logger, metrics, nil)

	if cfg.Calendar.DefaultName != "" {
		if _, err := agendaUC.CreateCalendar(ctx, agenda.CreateCalendarInput{
			Name:     cfg.Calendar.DefaultName,
			Timezone: cfg.Calendar.DefaultTimezone,
		}); err != nil {
			logger.Error(ctx, "Failed to create default calendar: ", err)
			return
		}
		if err := agendaUC.UseCalendar(ctx, cfg.Calendar.DefaultName); err != nil {
			logger.Error(ctx, "Failed to select default calendar: ", err)
			return
		}
		logger.Infof(ctx, "Default calendar %q (%s) in use", cfg.Calendar.DefaultName, cfg.Calendar.DefaultTimezone)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Metrics:       metrics,
		RateLimit:     cfg.RateLimit,
		AgendaUseCase: agendaUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

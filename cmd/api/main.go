package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pawpal-planner/config"
	"pawpal-planner/internal/httpserver"
	"pawpal-planner/internal/middleware"
	plannerHTTP "pawpal-planner/internal/planner/delivery/http"
	"pawpal-planner/internal/planner/usecase"
	"pawpal-planner/pkg/gcalendar"
	"pawpal-planner/pkg/log"
)

// @title       PawPal Planner API
// @description Pet care day planner: validates care tasks and places them into non-overlapping daily slots with a reason for every decision.
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

	logger.Info(ctx, "Starting PawPal Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 4. Planner domain
	plannerUC := usecase.New(logger, calendarClient, usecase.Config{
		ProbeStepMinutes:      cfg.Scheduler.ProbeStepMinutes,
		ProbeLimit:            cfg.Scheduler.ProbeLimit,
		UrgencyHorizonMinutes: cfg.Scheduler.UrgencyHorizonMinutes,
		MinGapMinutes:         cfg.Scheduler.MinGapMinutes,
		PlanHistorySize:       cfg.Scheduler.PlanHistorySize,
		CalendarID:            cfg.GoogleCalendar.CalendarID,
		Timezone:              cfg.GoogleCalendar.Timezone,
	})
	plannerHandler := plannerHTTP.New(logger, plannerUC)

	mw := middleware.New(logger, cfg.RateLimit.PerMinute)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		PlannerHandler: plannerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

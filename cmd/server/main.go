package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/scamp925/level-up-server/internal/config"
	"github.com/scamp925/level-up-server/internal/handler"
	"github.com/scamp925/level-up-server/internal/middleware"
	"github.com/scamp925/level-up-server/internal/service"
	"github.com/scamp925/level-up-server/internal/store"
	"github.com/scamp925/level-up-server/internal/telemetry"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		slog.Error("failed to set up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to open database",
			slog.String("driver", cfg.Database.Driver),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database", slog.String("driver", db.Driver))

	// Initialize services
	gameTypeService := service.NewGameTypeService(db.GameTypes)
	gamerService := service.NewGamerService(db.Gamers)
	gameService := service.NewGameService(service.GameServiceConfig{
		GameRepo:     db.Games,
		GameTypeRepo: db.GameTypes,
		GamerRepo:    db.Gamers,
	})
	eventService := service.NewEventService(service.EventServiceConfig{
		EventRepo:      db.Events,
		GameRepo:       db.Games,
		GamerRepo:      db.Gamers,
		AttendanceRepo: db.Attendance,
	})

	routes := handler.Routes(handler.Handlers{
		Health:    handler.NewHealthHandler(db),
		GameTypes: handler.NewGameTypeHandler(gameTypeService),
		Gamers:    handler.NewGamerHandler(gamerService),
		Games:     handler.NewGameHandler(gameService),
		Events:    handler.NewEventHandler(eventService),
	})

	mux := http.NewServeMux()
	handler.Register(mux, routes)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.Recovery,
		middleware.RequestID,
		middleware.Logger,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
		middleware.Tracing(otel.GetTracerProvider(), otel.GetTextMapPropagator()),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.Int("routes", len(routes)),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Warn("tracing shutdown failed", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

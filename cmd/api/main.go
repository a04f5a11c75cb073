package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/api"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/setup"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/setup/logger"
	"github.com/rs/cors"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	logger := logger.New(cfg.LogLevel, true)
	if envErr != nil {
		logger.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	// History is optional; a nil interface disables the results endpoint
	var history api.ResultHistory
	if deps.DB != nil {
		history = deps.DB
	}

	// API
	handler := api.NewHandler(deps.Executor, deps.Registry, history, deps.MaxInputBytes, &logger)
	container := restful.NewContainer()

	// Add filters
	container.Filter(middleware.Logger(&logger))
	container.Filter(middleware.RecoverPanic(&logger))

	// register API
	api.RegisterRoutes(container, handler)
	api.RegisterOpenAPI(container)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	logger.Info().Str("address", addr).Msg("Starting AoC Solver API")

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("Server failed")
		return
	}

	logger.Info().Msg("AoC Solver API stopped")
}

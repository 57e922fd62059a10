// @title         life-advisor API
// @version       1.0
// @description   Single-endpoint proxy that asks an LLM for everyday life advice.
// @BasePath      /
// @schemes       http
// @host          localhost:3000
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	// internal imports
	"github.com/artem13815/lifeadvisor/api/http"
	"github.com/artem13815/lifeadvisor/api/http/handlers"
	"github.com/artem13815/lifeadvisor/pkg/advisor"
	"github.com/artem13815/lifeadvisor/pkg/config"
	"github.com/artem13815/lifeadvisor/pkg/health"
	"github.com/artem13815/lifeadvisor/pkg/health/checkers"
	"github.com/artem13815/lifeadvisor/pkg/llm/openai"
	"github.com/artem13815/lifeadvisor/pkg/logging"
	"github.com/artem13815/lifeadvisor/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	slog.SetDefault(logger)

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set: /chat will fail until it is configured")
	}

	collector := metrics.NewCollector()

	// Completion client behind the llm.ChatModel port
	llmClient := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.CompletionTimeout)
	model := metrics.InstrumentChatModel(llmClient, llmClient.Model, collector)

	advisorSvc := advisor.NewService(model, advisor.Options{UserName: cfg.AdvisorUserName})
	chatHandler := handlers.NewChatHandler(advisorSvc, collector)

	readiness := health.NewService(checkers.NewCredentialsChecker("openai", cfg.OpenAIAPIKey))
	healthHandler := handlers.NewHealthHandler(readiness)

	app := http.NewApp(logger)
	http.Register(app, chatHandler, healthHandler, collector.Handler())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening",
			"port", cfg.Port,
			"model", llmClient.Model,
			"completion_timeout", cfg.CompletionTimeout.String(),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
}

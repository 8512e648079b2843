package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/topprix-dz/internal/agent"
	"github.com/topprix-dz/internal/bot"
	"github.com/topprix-dz/internal/config"
	"github.com/topprix-dz/internal/llm"
	"github.com/topprix-dz/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	logger := setupLogger(cfg.LogLevel, cfg.Environment)
	logger.Info().
		Str("environment", cfg.Environment).
		Str("port", cfg.Port).
		Bool("ai_enabled", cfg.AIEnabled()).
		Bool("bot_enabled", cfg.BotEnabled()).
		Msg("Starting TopPrix-DZ backend")

	// Create context that listens for termination signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize completion gateway
	llmClient := llm.NewClient(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqTimeout, logger)
	if llmClient.Configured() {
		logger.Info().Str("model", llmClient.Model()).Msg("Completion gateway configured")
	} else {
		logger.Warn().Msg("GROQ_API_KEY not set - AI feature disabled, search endpoints stay active")
	}

	// Initialize response builder
	builder := agent.NewBuilder(llmClient, logger)

	// Initialize HTTP server
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(builder, cfg.Environment, logger).Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	// Initialize Telegram bot only when a token is present
	var telegramBot *bot.Bot
	botErrChan := make(chan error, 1)
	if cfg.BotEnabled() {
		logger.Info().Msg("Initializing Telegram bot...")
		telegramBot, err = bot.New(cfg, builder, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create bot")
		}

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				botErrChan <- err
			}
		}()
		logger.Info().Str("username", telegramBot.GetUsername()).Msg("Telegram bot is running")
	} else {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN not set - running API only")
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Wait for termination signal or an unrecovered fault
	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("Received termination signal")
	case err := <-serverErrChan:
		logger.Fatal().Err(err).Msg("HTTP server stopped with error")
	case err := <-botErrChan:
		logger.Fatal().Err(err).Msg("Bot stopped with error")
	}

	// Graceful shutdown
	logger.Info().Msg("Initiating graceful shutdown...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP server shutdown timed out")
	}

	if telegramBot != nil {
		// Give active handlers time to finish before releasing the session
		done := make(chan struct{})
		go func() {
			telegramBot.Stop()
			close(done)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn().Msg("Shutdown timeout exceeded, some requests may be lost")
		case <-done:
			logger.Info().Msg("Bot stopped")
		}
	}

	logger.Info().Msg("Graceful shutdown completed")
}

// setupLogger configures and returns a zerolog logger
func setupLogger(level, environment string) zerolog.Logger {
	// Parse log level
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Configure output format
	var logger zerolog.Logger
	if environment == "development" {
		// Pretty console output for development
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Caller().Logger()
	} else {
		// JSON output for production
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	return logger
}

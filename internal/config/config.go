package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/topprix-dz/internal/models"
)

// Load loads configuration from environment variables
// It first attempts to load from .env file, then reads environment variables
func Load() (*models.Config, error) {
	// Try to load .env file (optional, ignore error if not found)
	_ = godotenv.Load()

	config := &models.Config{
		// Telegram settings (optional: absence disables the chat transport)
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),

		// Groq API settings (key optional: absence disables the AI branch)
		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqTimeout: getEnvInt("GROQ_TIMEOUT", 30),

		// HTTP settings
		Port: getEnv("PORT", "3000"),

		// App settings
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "production"),
	}

	// Validate configuration
	if err := validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// validate checks configuration values that have constraints
func validate(cfg *models.Config) error {
	if cfg.GroqModel == "" {
		return fmt.Errorf("GROQ_MODEL must not be empty")
	}
	if cfg.GroqTimeout <= 0 {
		return fmt.Errorf("GROQ_TIMEOUT must be positive, got %d", cfg.GroqTimeout)
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %s", cfg.Port)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %s", cfg.LogLevel)
	}

	return nil
}

// getEnv retrieves environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves environment variable as integer or returns default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

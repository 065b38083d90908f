package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	FrontendURL  string // allowed CORS origin
}

// Load loads configuration from environment variables or sets defaults.
// In dev, a .env file is read first.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		godotenv.Load()
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./roomly.db"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

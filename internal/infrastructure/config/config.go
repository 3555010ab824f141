package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// SQLite database file
	DBPath string

	// Gemini API
	GeminiAPIKey  string
	GeminiBaseURL string // e.g. "https://generativelanguage.googleapis.com"
	GeminiModel   string // e.g. "gemini-2.5-flash"

	// SessionSecret enables signed session cookies when non-empty.
	// Left empty, sessions use the plain cookie/uid-token scheme.
	SessionSecret string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "vchartered.db"),
		GeminiAPIKey:    mustGetenv("GEMINI_API_KEY"),
		GeminiBaseURL:   getenvDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:     getenvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

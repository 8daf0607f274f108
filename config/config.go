package config

import (
	"os"
	"strconv"
	"time"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	// MockLatency is the artificial delay applied to every simulated
	// catalog call, standing in for a real backend's network round trip.
	MockLatency time.Duration
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads the configuration from environment variables.
func Load() {
	AppConfig = Config{
		Port:         getEnv("PORT", "3000"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		MockLatency:  getEnvMillis("MOCK_LATENCY_MS", 500*time.Millisecond),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

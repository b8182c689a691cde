// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the booking service.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// OpenAIAPIKey authenticates the chat-completion generator. When empty,
	// the bot falls back to the built-in rule-based generator, so the service
	// runs fully offline by default.
	OpenAIAPIKey string

	// OpenAIModel is the chat-completion model name. Defaults to "gpt-4o-mini".
	OpenAIModel string

	// OpenAIBaseURL is the API root for the generator. Defaults to the OpenAI
	// endpoint; point it at any compatible serving endpoint.
	OpenAIBaseURL string

	// SessionTTL is how long an idle chatbot session survives before it is
	// expired. Defaults to 30m.
	SessionTTL time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Every variable has a default; Load only fails on unparseable values.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
	}

	ttl := getEnv("SESSION_TTL", "30m")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return Config{}, fmt.Errorf("SESSION_TTL: invalid duration %q", ttl)
	}
	cfg.SessionTTL = d

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

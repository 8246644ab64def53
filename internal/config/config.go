// Package config provides environment-backed configuration for the server.
//
// All upstream credentials are required at process start: a missing key is a
// fatal startup condition, never a per-request error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultPort is used when neither PORT nor the --port flag is set.
const DefaultPort = 8080

// Config holds all runtime configuration for the server.
type Config struct {
	Port int

	GeminiAPIKey  string `validate:"required"` // LLM completions (skills, ranking, scoring)
	RapidAPIKey   string `validate:"required"` // JSearch job API
	GoogleAPIKey  string `validate:"required"` // Google Custom Search
	GoogleCXID    string `validate:"required"` // Custom Search engine ID
	YouTubeAPIKey string `validate:"required"` // YouTube Data API v3
}

// envNames maps struct fields to the environment variables they come from,
// so validation failures can name what the operator needs to set.
var envNames = map[string]string{
	"GeminiAPIKey":  "GEMINI_API_KEY",
	"RapidAPIKey":   "RAPIDAPI_KEY",
	"GoogleAPIKey":  "GOOGLE_API_KEY",
	"GoogleCXID":    "GOOGLE_CX_ID",
	"YouTubeAPIKey": "YOUTUBE_API_KEY",
}

// Load reads configuration from the environment and validates it.
// Returns an error listing every missing variable rather than the first.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          DefaultPort,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		RapidAPIKey:   os.Getenv("RAPIDAPI_KEY"),
		GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		GoogleCXID:    os.Getenv("GOOGLE_CX_ID"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("config error: invalid PORT value %q", portStr)
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required credential is present.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("config validation failed: %w", err)
	}

	var missing []string
	for _, fieldErr := range validationErrs {
		name := envNames[fieldErr.Field()]
		if name == "" {
			name = fieldErr.Field()
		}
		missing = append(missing, name)
	}
	return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
}

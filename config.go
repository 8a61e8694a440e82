package main

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment variables for the storefront backend.
type Config struct {
	MongoURI       string   // MongoDB connection string (required)
	MongoDB        string   // Database name (default: storefront)
	Port           string   // HTTP port (default: 3000)
	AllowedOrigins []string // CORS allow-list, comma-separated in env
	RedisURL       string   // Optional product list cache
	Env            string   // "production" switches logger config
}

// LoadConfig reads the environment into a Config and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI: os.Getenv("MONGODB_URI"),
		MongoDB:  os.Getenv("MONGODB_DB"),
		Port:     os.Getenv("PORT"),
		RedisURL: os.Getenv("REDIS_URL"),
		Env:      os.Getenv("ENV"),
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = "storefront"
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	return cfg, nil
}

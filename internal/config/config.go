package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the wikitop analyzer.
type Config struct {
	Project    string
	Access     string
	UserAgent  string
	Retries    int
	RetryDelay time.Duration
	TopN       int
	OutputPath string
}

// FromEnv creates a configuration instance sourced from environment variables.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Project:    getEnv("WIKITOP_PROJECT", "en.wikipedia"),
		Access:     getEnv("WIKITOP_ACCESS", "all-access"),
		UserAgent:  getEnv("WIKITOP_USER_AGENT", "wikitop-analyzer"),
		Retries:    3,
		RetryDelay: time.Second,
		TopN:       20,
		OutputPath: getEnv("WIKITOP_OUTPUT", "top_articles.png"),
	}

	if retries := os.Getenv("WIKITOP_RETRIES"); retries != "" {
		if _, err := fmt.Sscanf(retries, "%d", &cfg.Retries); err != nil {
			return Config{}, fmt.Errorf("parse WIKITOP_RETRIES: %w", err)
		}
	}

	if delay := os.Getenv("WIKITOP_RETRY_DELAY_S"); delay != "" {
		var seconds int
		if _, err := fmt.Sscanf(delay, "%d", &seconds); err != nil {
			return Config{}, fmt.Errorf("parse WIKITOP_RETRY_DELAY_S: %w", err)
		}
		cfg.RetryDelay = time.Duration(seconds) * time.Second
	}

	if topN := os.Getenv("WIKITOP_TOP_N"); topN != "" {
		if _, err := fmt.Sscanf(topN, "%d", &cfg.TopN); err != nil {
			return Config{}, fmt.Errorf("parse WIKITOP_TOP_N: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

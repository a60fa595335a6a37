package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel is the Groq model used when RESEARCH_MODEL is not set.
	DefaultModel = "llama-3.3-70b-versatile"

	// MinResults and MaxResults bound how many search results are kept
	// per keyword.
	MinResults     = 1
	MaxResults     = 10
	DefaultResults = 5
)

type Config struct {
	GroqAPIKey   string
	NewsAPIKey   string
	SerperAPIKey string

	Model          string
	SearchProvider string
	NewsSource     string

	NewsLanguage string
	NewsPageSize int

	DefaultMaxResults int
}

// Load reads configuration from the environment, loading a .env file
// first if one exists. It fails if either required API key is missing.
func Load() (*Config, error) {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := &Config{
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		NewsAPIKey:        os.Getenv("NEWS_API_KEY"),
		SerperAPIKey:      os.Getenv("SERPER_API_KEY"),
		Model:             getEnv("RESEARCH_MODEL", DefaultModel),
		SearchProvider:    getEnv("SEARCH_PROVIDER", "duckduckgo"),
		NewsSource:        getEnv("NEWS_SOURCE", "newsapi"),
		NewsLanguage:      getEnv("NEWS_LANGUAGE", "en"),
		NewsPageSize:      getEnvInt("NEWS_PAGE_SIZE", 5),
		DefaultMaxResults: ClampResults(getEnvInt("MAX_RESULTS", DefaultResults)),
	}

	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is not set")
	}
	if cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("NEWS_API_KEY is not set")
	}

	return cfg, nil
}

// ClampResults forces a per-keyword result count into the supported range.
func ClampResults(n int) int {
	if n < MinResults {
		return MinResults
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// ABOUTME: Centralized configuration for the recall CLI and MCP server
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the recall system
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration

	// Qdrant settings
	QdrantHost   string
	QdrantPort   int
	QdrantAPIKey string
	Collection   string

	// Retrieval settings
	VectorDimension int
	TopK            int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("RECALL_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:  getEnv("RECALL_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		QdrantHost:      getEnv("QDRANT_HOST", "localhost"),
		QdrantPort:      getEnvInt("QDRANT_PORT", 6334),
		QdrantAPIKey:    os.Getenv("QDRANT_API_KEY"),
		Collection:      getEnv("RECALL_COLLECTION", "facts"),
		VectorDimension: getEnvInt("RECALL_VECTOR_DIM", 1536),
		TopK:            getEnvInt("RECALL_TOP_K", 3),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration values are within usable ranges
func (c *Config) Validate() error {
	if c.QdrantPort <= 0 || c.QdrantPort > 65535 {
		return fmt.Errorf("QDRANT_PORT must be 1-65535, got %d", c.QdrantPort)
	}
	if c.VectorDimension <= 0 {
		return fmt.Errorf("RECALL_VECTOR_DIM must be positive, got %d", c.VectorDimension)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("RECALL_TOP_K must be positive, got %d", c.TopK)
	}
	if c.Collection == "" {
		return fmt.Errorf("RECALL_COLLECTION must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

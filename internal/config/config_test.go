// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Verifies defaults, overrides, and validation errors
package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"OPENAI_API_KEY", "RECALL_CHAT_MODEL", "RECALL_EMBEDDING_MODEL",
		"OPENAI_TIMEOUT", "QDRANT_HOST", "QDRANT_PORT", "QDRANT_API_KEY",
		"RECALL_COLLECTION", "RECALL_VECTOR_DIM", "RECALL_TOP_K",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.QdrantHost != "localhost" {
		t.Errorf("QdrantHost = %q, want localhost", cfg.QdrantHost)
	}
	if cfg.QdrantPort != 6334 {
		t.Errorf("QdrantPort = %d, want 6334", cfg.QdrantPort)
	}
	if cfg.Collection != "facts" {
		t.Errorf("Collection = %q, want facts", cfg.Collection)
	}
	if cfg.VectorDimension != 1536 {
		t.Errorf("VectorDimension = %d, want 1536", cfg.VectorDimension)
	}
	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.TopK)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RECALL_CHAT_MODEL", "gpt-4o")
	t.Setenv("QDRANT_HOST", "qdrant.internal")
	t.Setenv("QDRANT_PORT", "7000")
	t.Setenv("RECALL_COLLECTION", "trivia")
	t.Setenv("RECALL_VECTOR_DIM", "3072")
	t.Setenv("RECALL_TOP_K", "5")
	t.Setenv("OPENAI_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %q, want gpt-4o", cfg.ChatModel)
	}
	if cfg.QdrantHost != "qdrant.internal" {
		t.Errorf("QdrantHost = %q, want qdrant.internal", cfg.QdrantHost)
	}
	if cfg.QdrantPort != 7000 {
		t.Errorf("QdrantPort = %d, want 7000", cfg.QdrantPort)
	}
	if cfg.Collection != "trivia" {
		t.Errorf("Collection = %q, want trivia", cfg.Collection)
	}
	if cfg.VectorDimension != 3072 {
		t.Errorf("VectorDimension = %d, want 3072", cfg.VectorDimension)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			QdrantPort:      6334,
			Collection:      "facts",
			VectorDimension: 1536,
			TopK:            3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "port zero", mutate: func(c *Config) { c.QdrantPort = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.QdrantPort = 70000 }, wantErr: true},
		{name: "dimension zero", mutate: func(c *Config) { c.VectorDimension = 0 }, wantErr: true},
		{name: "negative topK", mutate: func(c *Config) { c.TopK = -1 }, wantErr: true},
		{name: "empty collection", mutate: func(c *Config) { c.Collection = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetEnvInt_Malformed(t *testing.T) {
	t.Setenv("RECALL_TOP_K", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want default 3 for malformed value", cfg.TopK)
	}
}

// ABOUTME: Shared service wiring and helpers for CLI commands
// ABOUTME: Builds the engine and vector store from environment configuration
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/harper/recall/internal/config"
	"github.com/harper/recall/internal/llm"
	"github.com/harper/recall/internal/rag"
	"github.com/harper/recall/internal/vecstore"
)

// services bundles the wired clients a command operates with
type services struct {
	engine *rag.Engine
	store  *vecstore.Client
	cfg    *config.Config
}

// setupServices loads config, connects both external services, and makes
// sure the collection exists. Called at the top of every RunE that touches
// the workflow.
func setupServices(ctx context.Context) (*services, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	llmClient, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("initializing logger: %w", err)
		}
	}

	store, err := vecstore.Connect(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantAPIKey, vecstore.Config{
		Collection: cfg.Collection,
		Dimension:  cfg.VectorDimension,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connecting to Qdrant: %w", err)
	}

	if err := store.EnsureCollection(ctx); err != nil {
		return nil, fmt.Errorf("ensuring collection: %w", err)
	}

	return &services{
		engine: rag.NewEngine(llmClient, store, llmClient, cfg.TopK),
		store:  store,
		cfg:    cfg,
	}, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

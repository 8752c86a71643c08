// ABOUTME: OpenAI client for embeddings and grounded chat completions
// ABOUTME: Uses text-embedding-3-small for embeddings, gpt-4o-mini for answers (configurable)
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	BaseURL        string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      DefaultChatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		Timeout:        30 * time.Second,
	}
}

// Client wraps the OpenAI API for single-shot embedding and completion
// calls. No retries happen at this layer; failures surface to the caller.
type Client struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
}

// NewClient creates a new OpenAI client with default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a new OpenAI client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	apiConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		apiConfig.BaseURL = config.BaseURL
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	embeddingModel := config.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:         openai.NewClientWithConfig(apiConfig),
		chatModel:      chatModel,
		embeddingModel: openai.EmbeddingModel(embeddingModel),
		timeout:        timeout,
	}, nil
}

// Embed generates an embedding vector for the given text.
// Empty or whitespace-only text is rejected with InvalidInputError.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Reason: "embedding input must not be empty"}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, wrapAPIError("embed", err)
	}

	if len(resp.Data) == 0 {
		return nil, &ServiceError{Op: "embed", Err: fmt.Errorf("no embeddings returned")}
	}

	return resp.Data[0].Embedding, nil
}

// Complete issues a single chat completion with a system instruction and
// one user turn, returning the generated text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", wrapAPIError("complete", err)
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Op: "complete", Err: fmt.Errorf("no completion choices returned")}
	}

	return resp.Choices[0].Message.Content, nil
}

// wrapAPIError maps go-openai errors into the local taxonomy.
// A 400 from the API means the input itself was rejected (e.g. over the
// model's token limit); everything else is a backend failure.
func wrapAPIError(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 400 {
		return &InvalidInputError{Reason: apiErr.Message}
	}
	return &ServiceError{Op: op, Err: err}
}

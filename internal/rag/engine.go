// ABOUTME: Core RAG workflow: ingest facts, retrieve by similarity, answer grounded
// ABOUTME: Composes injected embedding, vector store, and completion services
package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/recall/internal/models"
)

// NoInformationAnswer is returned by Answer when retrieval finds nothing.
// The completion service is never called in that case.
const NoInformationAnswer = "I don't have any stored facts that answer this question."

// DefaultTopK bounds how many facts are folded into the answer prompt.
const DefaultTopK = 3

const systemInstruction = `You are a precise assistant. Answer the question using ONLY the facts provided.
If the facts do not contain the answer, say you do not know. Do not invent information.`

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// FactStore persists fact points and serves similarity search.
type FactStore interface {
	Upsert(ctx context.Context, fact models.Fact, vector []float32) error
	Retrieve(ctx context.Context, ids []string) ([]models.StoredFact, error)
	Delete(ctx context.Context, ids []string) error
	Search(ctx context.Context, vector []float32, limit int) ([]models.SearchResult, error)
}

// Completer produces text from a system instruction and a user turn.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Engine sequences the RAG workflow over injected services. Every external
// call is awaited before the next dependent step; failures propagate
// unchanged to the caller.
type Engine struct {
	embedder  Embedder
	store     FactStore
	completer Completer
	topK      int
}

// NewEngine creates an engine with the given services. topK bounds the
// number of facts used for grounding; values <= 0 fall back to DefaultTopK.
func NewEngine(embedder Embedder, store FactStore, completer Completer, topK int) *Engine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{
		embedder:  embedder,
		store:     store,
		completer: completer,
		topK:      topK,
	}
}

// Ingest embeds the fact text and upserts it into the store with a payload
// carrying the original text. Re-ingesting an id replaces the point
// entirely; there is no merge.
func (e *Engine) Ingest(ctx context.Context, id, text string) error {
	vector, err := e.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embedding fact %s: %w", id, err)
	}

	if err := e.store.Upsert(ctx, models.Fact{ID: id, Text: text}, vector); err != nil {
		return fmt.Errorf("storing fact %s: %w", id, err)
	}
	return nil
}

// RetrieveFacts embeds the query and returns the payload texts of the k
// nearest points, best match first. An empty result is a valid outcome.
func (e *Engine) RetrieveFacts(ctx context.Context, query string, k int) ([]string, error) {
	vector, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := e.store.Search(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("searching facts: %w", err)
	}

	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Payload.Text)
	}
	return texts, nil
}

// Answer retrieves the top-K facts for the query and asks the completion
// service for an answer grounded in them. When no facts are found it
// short-circuits with NoInformationAnswer without calling the service.
func (e *Engine) Answer(ctx context.Context, query string) (string, error) {
	facts, err := e.RetrieveFacts(ctx, query, e.topK)
	if err != nil {
		return "", err
	}

	if len(facts) == 0 {
		return NoInformationAnswer, nil
	}

	answer, err := e.completer.Complete(ctx, systemInstruction, buildUserTurn(query, facts))
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return answer, nil
}

// buildUserTurn joins the retrieved facts into a context block followed by
// the question.
func buildUserTurn(query string, facts []string) string {
	var sb strings.Builder
	sb.WriteString("Facts:\n")
	for _, fact := range facts {
		sb.WriteString("- ")
		sb.WriteString(fact)
		sb.WriteString("\n")
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(query)
	return sb.String()
}

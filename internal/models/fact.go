// ABOUTME: Fact and point models for the recall vector store
// ABOUTME: Defines Fact, Payload, StoredFact, and SearchResult structures
package models

// Fact is a caller-supplied piece of knowledge to store.
// The ID is unique within the collection; re-ingesting the same ID
// replaces the stored point entirely.
type Fact struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Payload is the metadata attached to a stored point. Text always carries
// the original fact text so answers can be grounded without re-embedding.
// Extra is an open extension map for forward compatibility.
type Payload struct {
	Text  string            `json:"text"`
	Extra map[string]string `json:"extra,omitempty"`
}

// StoredFact is a point read back from the vector store.
type StoredFact struct {
	ID      string    `json:"id"`
	Vector  []float32 `json:"vector,omitempty"`
	Payload Payload   `json:"payload"`
}

// SearchResult pairs a stored fact with its similarity score.
// Results are ordered best-match-first.
type SearchResult struct {
	StoredFact
	Score float32 `json:"score"`
}

// ABOUTME: Demonstration run sequencing ingest, answer, read-back, and delete
// ABOUTME: Shows the RAG components composing correctly in strict sequence
package rag

import (
	"context"
	"fmt"
	"io"
)

// DemoFact is one seed fact for the demonstration run.
type DemoFact struct {
	ID   string
	Text string
}

// DefaultDemoFacts are the facts seeded by the demonstration run.
var DefaultDemoFacts = []DemoFact{
	{ID: "1", Text: "The Earth orbits the Sun."},
	{ID: "2", Text: "The human body contains 206 bones."},
}

// RunDemo walks the whole workflow once: ingest the seed facts, answer a
// question grounded in one of them, read that point back, delete it, verify
// the read now returns empty, then repeat answer/read/delete for a second
// question against the remaining fact. Progress is written to out. The
// first failing step aborts the rest.
func RunDemo(ctx context.Context, engine *Engine, store FactStore, out io.Writer) error {
	for _, fact := range DefaultDemoFacts {
		if err := engine.Ingest(ctx, fact.ID, fact.Text); err != nil {
			return fmt.Errorf("ingesting demo facts: %w", err)
		}
		fmt.Fprintf(out, "✓ Ingested fact %s: %s\n", fact.ID, fact.Text)
	}

	steps := []struct {
		question string
		factID   string
	}{
		{question: "How many bones are in the human body?", factID: "2"},
		{question: "What does the Earth orbit?", factID: "1"},
	}

	for _, step := range steps {
		answer, err := engine.Answer(ctx, step.question)
		if err != nil {
			return fmt.Errorf("answering %q: %w", step.question, err)
		}
		fmt.Fprintf(out, "\nQ: %s\nA: %s\n", step.question, answer)

		stored, err := store.Retrieve(ctx, []string{step.factID})
		if err != nil {
			return fmt.Errorf("reading back fact %s: %w", step.factID, err)
		}
		for _, fact := range stored {
			fmt.Fprintf(out, "Stored point %s: %s\n", fact.ID, fact.Payload.Text)
		}

		if err := store.Delete(ctx, []string{step.factID}); err != nil {
			return fmt.Errorf("deleting fact %s: %w", step.factID, err)
		}
		fmt.Fprintf(out, "✓ Deleted point %s\n", step.factID)

		remaining, err := store.Retrieve(ctx, []string{step.factID})
		if err != nil {
			return fmt.Errorf("re-reading fact %s after delete: %w", step.factID, err)
		}
		if len(remaining) != 0 {
			return fmt.Errorf("expected empty read after deleting %s, found %d point(s)", step.factID, len(remaining))
		}
		fmt.Fprintf(out, "✓ Read after delete returned no points\n")
	}

	return nil
}

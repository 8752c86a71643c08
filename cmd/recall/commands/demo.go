// ABOUTME: CLI command running the end-to-end demonstration workflow
// ABOUTME: Ingests seed facts, answers grounded questions, reads back and deletes
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/recall/internal/rag"
)

// NewDemoCmd creates the demo command
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the end-to-end demonstration",
		Long: `Run the full workflow once against live services:

ingest seed facts, answer a question grounded in them, read the
points back, delete them, verify the read returns empty, and answer
a second question. Requires OPENAI_API_KEY and a reachable Qdrant.`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := setupServices(ctx)
	if err != nil {
		return err
	}

	if err := rag.RunDemo(ctx, svc.engine, svc.store, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("demo run: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Demo completed\n")
	}
	return nil
}

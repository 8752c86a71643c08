// ABOUTME: CLI command to ingest a fact into the vector store
// ABOUTME: Embeds the text and upserts it with a caller-supplied or generated id
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	ingestID   string
	ingestFile string
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [text]",
		Short: "Store a fact",
		Long: `Embed a text fact and store it in the vector collection.

Re-ingesting the same id replaces the stored fact entirely.

Examples:
  recall ingest "The Earth orbits the Sun."
  recall ingest --id 42 "The human body contains 206 bones."
  recall ingest --file facts.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestID, "id", "", "Fact id (a UUID is generated when omitted)")
	cmd.Flags().StringVar(&ingestFile, "file", "", "Read fact text from file")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	// Get fact text
	var text string
	if ingestFile != "" {
		data, err := os.ReadFile(ingestFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no text provided")
	}

	id := ingestID
	if id == "" {
		id = uuid.New().String()
	}

	ctx := cmd.Context()
	svc, err := setupServices(ctx)
	if err != nil {
		return err
	}

	if err := svc.engine.Ingest(ctx, id, text); err != nil {
		return fmt.Errorf("ingesting fact: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Stored fact %s: %s\n", id, truncate(text, 60))
	}
	return nil
}

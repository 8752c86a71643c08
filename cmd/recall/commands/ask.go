// ABOUTME: CLI command to answer a question grounded in stored facts
// ABOUTME: Retrieves top-K facts by similarity and calls the completion service
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askFactsOnly bool
	askLimit     int
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from stored facts",
		Long: `Answer a question using only the stored facts most relevant to it.

When no relevant facts exist, a fixed "no information" response is
returned without calling the completion service.

Examples:
  recall ask "How many bones are in the human body?"
  recall ask --facts-only "What orbits the Sun?"
  recall ask --limit 5 "Tell me about the Earth"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().BoolVar(&askFactsOnly, "facts-only", false, "Print the retrieved facts instead of generating an answer")
	cmd.Flags().IntVar(&askLimit, "limit", 0, "Maximum facts to retrieve (defaults to RECALL_TOP_K)")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	ctx := cmd.Context()
	svc, err := setupServices(ctx)
	if err != nil {
		return err
	}

	if askFactsOnly {
		limit := askLimit
		if limit == 0 {
			limit = svc.cfg.TopK
		}
		if err := validatePositiveInt(limit, "limit"); err != nil {
			return err
		}

		facts, err := svc.engine.RetrieveFacts(ctx, question, limit)
		if err != nil {
			return fmt.Errorf("retrieving facts: %w", err)
		}

		if outputFormat == "json" {
			data, err := json.MarshalIndent(facts, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return nil
		}

		if len(facts) == 0 {
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "No facts found for: %s\n", question)
			}
			return nil
		}
		for _, fact := range facts {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", fact)
		}
		return nil
	}

	answer, err := svc.engine.Answer(ctx, question)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", answer)
	return nil
}

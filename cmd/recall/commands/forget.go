// ABOUTME: CLI command to delete stored facts by id
// ABOUTME: Deleting ids that do not exist is a silent no-op
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewForgetCmd creates the forget command
func NewForgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forget <id> [id...]",
		Short: "Delete stored facts",
		Long: `Delete stored facts by id.

Deleting an id that does not exist is a no-op, not an error.

Examples:
  recall forget 42
  recall forget 1 2 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: runForget,
	}

	return cmd
}

func runForget(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := setupServices(ctx)
	if err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, args); err != nil {
		return fmt.Errorf("deleting facts: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %d fact(s)\n", len(args))
	}
	return nil
}

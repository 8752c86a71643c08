// ABOUTME: Root CLI command with global flags for the recall tool
// ABOUTME: Wires subcommands and handles verbose/quiet output modes
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Store facts as vectors and answer questions grounded in them",
		Long: `Recall stores short text facts as vector embeddings in Qdrant,
retrieves the facts most relevant to a question, and produces a
grounded answer with an OpenAI chat completion.

Configuration comes from environment variables (or a .env file):
OPENAI_API_KEY, QDRANT_HOST, QDRANT_PORT, RECALL_COLLECTION.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format (text or json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewForgetCmd())
	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// Package cmd provides the CLI entry points for the support bot.
//
// Running the binary with no arguments starts the HTTP server; `serve` is
// also available as an explicit subcommand. Graceful shutdown is handled
// via context cancellation on SIGINT/SIGTERM.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "supportbot",
	Short: "AI customer support bot grounded in a FAQ corpus",
	Long: `supportbot answers customer questions from a fixed FAQ document using
Gemini, keeps per-session transcripts in SQLite, and escalates to a human
agent with a generated summary when the answer is not in the FAQs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// Package commands wires the ledgerbook CLI. Every command operates on a
// project directory holding a ledgerbook.yaml and the JSON book file it
// points at; the commands themselves contain no ledger rules, they only
// drive the public book API.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgerbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerbook",
		Short:   "Double-entry bookkeeping on a plain JSON ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newYearCommand())
	rootCmd.AddCommand(newVerificationsCommand())
	rootCmd.AddCommand(newDoctorCommand())

	return rootCmd
}

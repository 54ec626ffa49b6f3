package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgerbook/internal/config"
)

func newYearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Manage fiscal years",
	}

	cmd.AddCommand(newYearAddCommand())

	return cmd
}

func newYearAddCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "add FROM TO",
		Short: "Add a fiscal year adjacent to the existing ones",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runYearAdd(dir, args[0], args[1]); err != nil {
				return err
			}
			cmd.Printf("Added fiscal year %s to %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")

	return cmd
}

func runYearAdd(dir, from, to string) error {
	cfg, book, err := loadProject(dir)
	if err != nil {
		return err
	}
	if _, err := book.CreateFiscalYear(from, to); err != nil {
		return err
	}
	cfg.Book.Years = append(cfg.Book.Years, config.YearConfig{From: from, To: to})
	return config.Save(filepath.Join(dir, config.FileName), cfg)
}

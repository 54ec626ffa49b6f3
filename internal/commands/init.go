package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerbook/ledgerbook"
	"github.com/ledgerbook/ledgerbook/internal/config"
)

func newInitCommand() *cobra.Command {
	var precision int32

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerbook project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, precision); err != nil {
				return err
			}
			cmd.Printf("Initialized ledgerbook project in %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().Int32Var(&precision, "precision", 2, "decimal places amounts are rounded to")

	return cmd
}

func runInit(dir string, precision int32) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default()
	cfg.Book.Precision = precision
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	book := ledgerbook.New(ledgerbook.WithPrecision(precision))
	return saveBook(dir, cfg, book)
}

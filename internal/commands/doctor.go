package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Audit the book and report anything suspect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnings, err := runDoctor(cmd.OutOrStdout(), dir)
			if err != nil {
				return err
			}
			if warnings > 0 {
				return fmt.Errorf("%d problem(s) found", warnings)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")

	return cmd
}

func runDoctor(out io.Writer, dir string) (int, error) {
	_, book, err := loadProject(dir)
	if err != nil {
		return 0, err
	}

	warnings := book.Doctor()
	for _, warning := range warnings {
		fmt.Fprintln(out, warning)
	}
	if len(warnings) == 0 {
		fmt.Fprintln(out, "Book is healthy.")
	}
	return len(warnings), nil
}

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVerificationsCommand() *cobra.Command {
	var dir string
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "verifications",
		Short: "List verifications, optionally within a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerifications(cmd.OutOrStdout(), dir, from, to)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&from, "from", "", "only list verifications on or after this date")
	cmd.Flags().StringVar(&to, "to", "", "only list verifications on or before this date")

	return cmd
}

func runVerifications(out io.Writer, dir, from, to string) error {
	_, book, err := loadProject(dir)
	if err != nil {
		return err
	}

	verifications, err := book.GetVerifications(from, to)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tDATE\tTEXT\tBALANCED\t")
	for _, verification := range verifications {
		balanced := "yes"
		if !verification.IsBalancedCreditDebit() {
			balanced = "NO"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
			verification.Number, verification.Date, verification.Text, balanced)
	}
	return w.Flush()
}

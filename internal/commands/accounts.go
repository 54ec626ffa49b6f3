package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand() *cobra.Command {
	var dir string
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with their debit and credit totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(cmd.OutOrStdout(), dir, from, to)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&from, "from", "", "only sum verifications on or after this date")
	cmd.Flags().StringVar(&to, "to", "", "only sum verifications on or before this date")

	return cmd
}

func runAccounts(out io.Writer, dir, from, to string) error {
	_, book, err := loadProject(dir)
	if err != nil {
		return err
	}

	accounts, err := book.GetAccounts("")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tNAME\tDEBIT\tCREDIT\t")
	for _, account := range accounts {
		debit, err := account.SumDebit(from, to, nil)
		if err != nil {
			return err
		}
		credit, err := account.SumCredit(from, to, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", account.Number, account.Name,
			debit.StringFixed(book.Precision()), credit.StringFixed(book.Precision()))
	}
	return w.Flush()
}

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// line is one side of a verification, parsed from an ACCOUNT=AMOUNT flag.
type line struct {
	account int
	amount  decimal.Decimal
}

func newAddCommand() *cobra.Command {
	var dir string
	var date string
	var text string
	var debits []string
	var credits []string
	var allowUnbalanced bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a verification to the book",
		Example: `  ledgerbook add --date 2012-03-09 --text "Stationery" \
    --debit 2640=6.2 --debit 6100=24.8 --credit 1930=31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			debitLines, err := parseLines(debits)
			if err != nil {
				return fmt.Errorf("--debit: %w", err)
			}
			creditLines, err := parseLines(credits)
			if err != nil {
				return fmt.Errorf("--credit: %w", err)
			}

			number, err := runAdd(dir, date, text, debitLines, creditLines, allowUnbalanced)
			if err != nil {
				return err
			}
			cmd.Printf("Added verification %d\n", number)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&date, "date", "", "verification date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&text, "text", "", "verification text")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debited line as ACCOUNT=AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credited line as ACCOUNT=AMOUNT (repeatable)")
	cmd.Flags().BoolVar(&allowUnbalanced, "allow-unbalanced", false, "record the verification even if debits and credits differ")

	return cmd
}

func parseLines(pairs []string) ([]line, error) {
	lines := make([]line, 0, len(pairs))
	for _, pair := range pairs {
		account, amount, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not ACCOUNT=AMOUNT", pair)
		}
		number, err := strconv.Atoi(account)
		if err != nil {
			return nil, fmt.Errorf("invalid account number %q", account)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q", amount)
		}
		lines = append(lines, line{account: number, amount: value})
	}
	return lines, nil
}

func runAdd(dir, date, text string, debits, credits []line, allowUnbalanced bool) (int, error) {
	cfg, book, err := loadProject(dir)
	if err != nil {
		return 0, err
	}

	verification, err := book.CreateVerification(date, text)
	if err != nil {
		return 0, err
	}
	for _, l := range debits {
		if err := verification.Debit(l.account, l.amount); err != nil {
			return 0, err
		}
	}
	for _, l := range credits {
		if err := verification.Credit(l.account, l.amount); err != nil {
			return 0, err
		}
	}

	if !allowUnbalanced && !verification.IsBalancedCreditDebit() {
		return 0, fmt.Errorf("verification %d is unbalanced; use --allow-unbalanced to record it anyway", verification.Number)
	}

	if err := saveBook(dir, cfg, book); err != nil {
		return 0, err
	}
	return verification.Number, nil
}

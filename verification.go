package ledgerbook

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/ledgerbook/dateutil"
	"github.com/ledgerbook/ledgerbook/numberutil"
)

// Line is one side of a double-entry within a verification, referencing the
// posted account by number.
type Line struct {
	AccountNumber int
	Amount        decimal.Decimal
}

// Verification is a dated journal entry in a Book. It holds debit and
// credit lines against accounts of the same book. A verification may be
// unbalanced at any point while it is being built; balance is checked on
// demand with IsBalancedCreditDebit, not enforced at post time. Create
// verifications through Book.CreateVerification.
type Verification struct {
	Number int
	Date   dateutil.Date
	Text   string

	book    *Book
	debits  []Line
	credits []Line
}

// Debits returns a copy of the verification's debit lines in posting order.
func (v *Verification) Debits() []Line {
	out := make([]Line, len(v.debits))
	copy(out, v.debits)
	return out
}

// Credits returns a copy of the verification's credit lines in posting order.
func (v *Verification) Credits() []Line {
	out := make([]Line, len(v.credits))
	copy(out, v.credits)
	return out
}

// Debit posts a debit of the given amount against the account with the
// given number. The amount is rounded to the book's precision and must be
// strictly positive after rounding. The line is appended to both the
// verification and the account, or to neither on failure.
func (v *Verification) Debit(accountNumber int, amount decimal.Decimal) error {
	return v.post(accountNumber, amount, false)
}

// Credit posts a credit of the given amount against the account with the
// given number. Same rules as Debit.
func (v *Verification) Credit(accountNumber int, amount decimal.Decimal) error {
	return v.post(accountNumber, amount, true)
}

func (v *Verification) post(accountNumber int, amount decimal.Decimal, credit bool) error {
	account := v.book.GetAccount(accountNumber)
	if account == nil {
		return fmt.Errorf("%w: account %d", ErrNotFound, accountNumber)
	}

	amount = numberutil.Round(amount, v.book.precision)
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s", ErrInvalidArgument, amount)
	}

	if credit {
		v.credits = append(v.credits, Line{AccountNumber: accountNumber, Amount: amount})
		account.credits = append(account.credits, Transaction{VerificationNumber: v.Number, Amount: amount})
	} else {
		v.debits = append(v.debits, Line{AccountNumber: accountNumber, Amount: amount})
		account.debits = append(account.debits, Transaction{VerificationNumber: v.Number, Amount: amount})
	}
	return nil
}

// IsBalancedCreditDebit reports whether the verification's debit and credit
// sums are equal within the fixed comparison epsilon.
func (v *Verification) IsBalancedCreditDebit() bool {
	return numberutil.Equal(sumLines(v.debits), sumLines(v.credits))
}

// Touches reports whether the verification has at least one debit or credit
// line against the account with the given number.
func (v *Verification) Touches(accountNumber int) bool {
	for _, line := range v.debits {
		if line.AccountNumber == accountNumber {
			return true
		}
	}
	for _, line := range v.credits {
		if line.AccountNumber == accountNumber {
			return true
		}
	}
	return false
}

func sumLines(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount)
	}
	return sum
}

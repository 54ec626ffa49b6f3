package ledgerbook

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/ledgerbook/dateutil"
)

// Transaction is one posted amount on an account, referencing the
// verification it came from by number.
type Transaction struct {
	VerificationNumber int
	Amount             decimal.Decimal
}

// TransactionFilter maps a transaction to the amount it contributes to a
// sum. The filter receives the whole transaction rather than just the
// amount, so callers can weight contributions by data the account knows
// nothing about, such as an owner's share.
type TransactionFilter func(Transaction) decimal.Decimal

// Account is a named ledger account in a Book. Its transaction sequences
// grow monotonically as verifications post to it; they are never removed
// or reordered. Create accounts through Book.CreateAccount.
type Account struct {
	Number int
	Name   string

	book    *Book
	debits  []Transaction
	credits []Transaction
}

// Debits returns a copy of the account's debit transactions in posting order.
func (a *Account) Debits() []Transaction {
	out := make([]Transaction, len(a.debits))
	copy(out, a.debits)
	return out
}

// Credits returns a copy of the account's credit transactions in posting order.
func (a *Account) Credits() []Transaction {
	out := make([]Transaction, len(a.credits))
	copy(out, a.credits)
	return out
}

// SumDebit sums the account's debit transactions whose verification date
// lies in the inclusive "YYYY-MM-DD" range [from, to]. An empty string
// leaves that side unbounded. A nil filter sums the transaction amounts
// unchanged; a non-nil filter fully replaces the contributed amount.
func (a *Account) SumDebit(from, to string, filter TransactionFilter) (decimal.Decimal, error) {
	return a.sumTransactions(a.debits, from, to, filter)
}

// SumCredit is SumDebit for the credit side.
func (a *Account) SumCredit(from, to string, filter TransactionFilter) (decimal.Decimal, error) {
	return a.sumTransactions(a.credits, from, to, filter)
}

func (a *Account) sumTransactions(container []Transaction, from, to string, filter TransactionFilter) (decimal.Decimal, error) {
	fromDate, err := parseBound(from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	toDate, err := parseBound(to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if filter == nil {
		filter = func(t Transaction) decimal.Decimal { return t.Amount }
	}

	sum := decimal.Zero
	for _, t := range container {
		date := a.book.GetVerification(t.VerificationNumber).Date
		if dateutil.InRange(date, fromDate, toDate) {
			sum = sum.Add(filter(t))
		}
	}
	return sum, nil
}

package ledgerbook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newTestBook creates a book with the standard accounts used across the
// package tests.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	book := New()
	for number, name := range map[int]string{
		1930: "Bank",
		2010: "Equity",
		2640: "Input VAT 25%",
		6100: "Office supplies",
	} {
		_, err := book.CreateAccount(number, name)
		require.NoError(t, err)
	}
	return book
}

func TestCreateAccount(t *testing.T) {
	book := New()

	account, err := book.CreateAccount(1930, "Bank")
	require.NoError(t, err)
	assert.Equal(t, 1930, account.Number)
	assert.Equal(t, "Bank", account.Name)
	assert.Same(t, account, book.GetAccount(1930))
}

func TestCreateAccount_Duplicate(t *testing.T) {
	book := New()

	_, err := book.CreateAccount(1930, "Bank")
	require.NoError(t, err)

	_, err = book.CreateAccount(1930, "Other bank")
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestCreateAccount_EmptyName(t *testing.T) {
	book := New()

	for _, name := range []string{"", "   "} {
		_, err := book.CreateAccount(1930, name)
		require.Error(t, err, "name %q", name)
		assert.True(t, IsInvalidArgument(err))
	}
}

func TestGetAccount_Missing(t *testing.T) {
	book := New()
	assert.Nil(t, book.GetAccount(9999), "absence is not an error")
}

func TestGetAccounts_All(t *testing.T) {
	book := newTestBook(t)

	accounts, err := book.GetAccounts("")
	require.NoError(t, err)
	require.Len(t, accounts, 4)

	// Ascending number order.
	numbers := make([]int, len(accounts))
	for i, a := range accounts {
		numbers[i] = a.Number
	}
	assert.Equal(t, []int{1930, 2010, 2640, 6100}, numbers)
}

func TestGetAccounts_Classified(t *testing.T) {
	book := newTestBook(t)

	between := func(from, to int) Classifier {
		return func(a *Account) bool {
			return a.Number >= from && a.Number < to
		}
	}

	require.NoError(t, book.AddClassifier("balance", between(1000, 3000)))

	accounts, err := book.GetAccounts("balance")
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, 1930, accounts[0].Number)
	assert.Equal(t, 2010, accounts[1].Number)
	assert.Equal(t, 2640, accounts[2].Number)
}

func TestGetAccounts_AndSemantics(t *testing.T) {
	book := newTestBook(t)

	// Two classifiers under the same type: accounts must satisfy both.
	require.NoError(t, book.AddClassifier("narrow", func(a *Account) bool {
		return a.Number >= 2000
	}))
	require.NoError(t, book.AddClassifier("narrow", func(a *Account) bool {
		return a.Number < 3000
	}))

	accounts, err := book.GetAccounts("narrow")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 2010, accounts[0].Number)
	assert.Equal(t, 2640, accounts[1].Number)
}

func TestGetAccounts_EmptyResultIsValid(t *testing.T) {
	book := newTestBook(t)

	require.NoError(t, book.AddClassifier("nothing", func(*Account) bool { return false }))

	accounts, err := book.GetAccounts("nothing")
	require.NoError(t, err, "a registered type with no matches is not an error")
	assert.Empty(t, accounts)
}

func TestGetAccounts_UnknownType(t *testing.T) {
	book := newTestBook(t)

	_, err := book.GetAccounts("typo")
	require.Error(t, err, "an unregistered type is an error, not an empty result")
	assert.True(t, IsInvalidArgument(err))
}

func TestAddClassifier_Invalid(t *testing.T) {
	book := New()

	err := book.AddClassifier("", func(*Account) bool { return true })
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	err = book.AddClassifier("type", nil)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestCreateVerification_Numbering(t *testing.T) {
	book := New()

	for want := 1; want <= 5; want++ {
		v, err := book.CreateVerification("2012-03-09", "entry")
		require.NoError(t, err)
		assert.Equal(t, want, v.Number, "numbers form the sequence 1, 2, 3, ...")
	}

	assert.Nil(t, book.GetVerification(6))
	assert.Equal(t, 3, book.GetVerification(3).Number)
}

func TestCreateVerification_Invalid(t *testing.T) {
	book := New()

	_, err := book.CreateVerification("not-a-date", "entry")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	_, err = book.CreateVerification("2012-03-09", "")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	_, err = book.CreateVerification("2012-03-09", "   ")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestGetVerifications_Range(t *testing.T) {
	book := New()

	dates := []string{"2012-03-04", "2012-03-09", "2012-03-15", "2012-04-01"}
	for _, d := range dates {
		_, err := book.CreateVerification(d, "entry "+d)
		require.NoError(t, err)
	}

	all, err := book.GetVerifications("", "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, v := range all {
		assert.Equal(t, i+1, v.Number, "ascending number order")
	}

	march, err := book.GetVerifications("2012-03-01", "2012-03-31")
	require.NoError(t, err)
	require.Len(t, march, 3)

	window, err := book.GetVerifications("2012-03-04", "2012-03-09")
	require.NoError(t, err)
	require.Len(t, window, 2, "bounds are inclusive")

	after, err := book.GetVerifications("2012-03-10", "")
	require.NoError(t, err)
	require.Len(t, after, 2)

	_, err = book.GetVerifications("bogus", "")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestDoctor_CleanBook(t *testing.T) {
	book := newTestBook(t)

	_, err := book.CreateFiscalYear("2012-01-01", "2012-12-31")
	require.NoError(t, err)

	v, err := book.CreateVerification("2012-03-09", "Balanced entry")
	require.NoError(t, err)
	require.NoError(t, v.Debit(6100, dec("31")))
	require.NoError(t, v.Credit(2010, dec("31")))

	assert.Empty(t, book.Doctor())
}

func TestDoctor_Unbalanced(t *testing.T) {
	book := newTestBook(t)

	_, err := book.CreateFiscalYear("2012-01-01", "2012-12-31")
	require.NoError(t, err)

	v, err := book.CreateVerification("2012-03-09", "Half an entry")
	require.NoError(t, err)
	require.NoError(t, v.Debit(6100, dec("31")))

	warnings := book.Doctor()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Invalid verification: 1 is unbalanced.", warnings[0])
}

func TestDoctor_NoFiscalYears(t *testing.T) {
	book := newTestBook(t)

	assert.Empty(t, book.Doctor(), "empty book is clean")

	v, err := book.CreateVerification("2012-03-09", "entry")
	require.NoError(t, err)
	require.NoError(t, v.Debit(6100, dec("10")))
	require.NoError(t, v.Credit(2010, dec("10")))

	warnings := book.Doctor()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Verifications exist without any fiscal years present.", warnings[0])
}

func TestDoctor_OutOfFiscalYears(t *testing.T) {
	book := newTestBook(t)

	_, err := book.CreateFiscalYear("2012-01-01", "2012-12-31")
	require.NoError(t, err)

	v, err := book.CreateVerification("2013-02-01", "Dated after the books close")
	require.NoError(t, err)
	require.NoError(t, v.Debit(6100, dec("10")))
	require.NoError(t, v.Credit(2010, dec("10")))

	warnings := book.Doctor()
	require.Len(t, warnings, 1)
	assert.Equal(t,
		"Verification out of fiscal years range. Verification: 1. Fiscal year range: 2012-01-01 to 2012-12-31.",
		warnings[0])
}

func TestWithPrecision(t *testing.T) {
	book := newTestBook(t)
	assert.Equal(t, int32(2), book.Precision(), "default precision")

	strict := New(WithPrecision(4))
	_, err := strict.CreateAccount(1930, "Bank")
	require.NoError(t, err)
	_, err = strict.CreateAccount(2010, "Equity")
	require.NoError(t, err)

	v, err := strict.CreateVerification("2012-03-09", "high precision")
	require.NoError(t, err)
	require.NoError(t, v.Debit(1930, dec("0.12345")))

	debits := v.Debits()
	require.Len(t, debits, 1)
	assert.True(t, debits[0].Amount.Equal(dec("0.1235")), "rounded to 4 places, got %s", debits[0].Amount)
}

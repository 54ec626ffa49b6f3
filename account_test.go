package ledgerbook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postStationery posts the worked purchase example: VAT 6.2 and supplies
// 24.8 debited, equity 31 credited.
func postStationery(t *testing.T, book *Book, date string) {
	t.Helper()
	v, err := book.CreateVerification(date, "Bought stationery")
	require.NoError(t, err)
	require.NoError(t, v.Debit(2640, dec("6.2")))
	require.NoError(t, v.Debit(6100, dec("24.8")))
	require.NoError(t, v.Credit(2010, dec("31")))
}

func TestSumCredit(t *testing.T) {
	book := newTestBook(t)
	postStationery(t, book, "2012-03-09")

	sum, err := book.GetAccount(2010).SumCredit("", "", nil)
	require.NoError(t, err)
	assert.True(t, sum.Equal(dec("31")), "got %s", sum)

	sum, err = book.GetAccount(2010).SumDebit("", "", nil)
	require.NoError(t, err)
	assert.True(t, sum.IsZero(), "no debits posted, got %s", sum)
}

func TestSumDebit_DateRange(t *testing.T) {
	book := newTestBook(t)
	postStationery(t, book, "2012-03-04")
	postStationery(t, book, "2012-03-09")
	postStationery(t, book, "2012-03-15")

	vat := book.GetAccount(2640)

	sum, err := vat.SumDebit("2012-03-04", "2012-03-09", nil)
	require.NoError(t, err)
	assert.True(t, sum.Equal(dec("12.4")), "two verifications in window, got %s", sum)

	sum, err = vat.SumDebit("", "", nil)
	require.NoError(t, err)
	assert.True(t, sum.Equal(dec("18.6")), "unbounded sums everything, got %s", sum)

	sum, err = vat.SumDebit("2012-04-01", "", nil)
	require.NoError(t, err)
	assert.True(t, sum.IsZero(), "empty window sums to zero, got %s", sum)

	_, err = vat.SumDebit("bogus", "", nil)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestSum_FilterOverridesAmount(t *testing.T) {
	book := newTestBook(t)
	postStationery(t, book, "2012-03-04")
	postStationery(t, book, "2012-03-09")

	constant := func(Transaction) decimal.Decimal {
		return dec("1337")
	}

	sum, err := book.GetAccount(2640).SumDebit("2012-03-04", "2012-03-09", constant)
	require.NoError(t, err)
	assert.True(t, sum.Equal(dec("2674")), "1337 per line, not scaled by amounts; got %s", sum)
}

func TestSum_EmptyAccount(t *testing.T) {
	book := newTestBook(t)

	sum, err := book.GetAccount(1930).SumDebit("", "", nil)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
	assert.True(t, sum.Equal(decimal.Zero), "zero, never an undefined value")
}

func TestDebitsCredits_AreCopies(t *testing.T) {
	book := newTestBook(t)
	postStationery(t, book, "2012-03-09")

	account := book.GetAccount(2640)
	debits := account.Debits()
	debits[0].Amount = dec("9999")

	sum, err := account.SumDebit("", "", nil)
	require.NoError(t, err)
	assert.True(t, sum.Equal(dec("6.2")), "mutating the copy must not touch the account")
}

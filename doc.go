// Package ledgerbook provides an in-memory double-entry bookkeeping engine.
//
// A Book records dated journal entries ("verifications") as paired
// debit/credit lines against numbered accounts, partitions its timeline
// into contiguous fiscal years, and groups accounts into report categories
// through named classifier predicates. Domain-specific accounting rules
// (a jurisdiction's chart of accounts, balance-sheet formulas) are layered
// on through the extension mechanism rather than baked into the core.
//
// # Quick start
//
//	book := ledgerbook.New()
//
//	book.CreateAccount(1930, "Bank")
//	book.CreateAccount(2010, "Equity")
//	book.CreateAccount(2640, "Input VAT 25%")
//	book.CreateAccount(6100, "Office supplies")
//
//	v, err := book.CreateVerification("2012-03-09", "Bought stationery")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v.Debit(2640, decimal.NewFromFloat(6.2))
//	v.Debit(6100, decimal.NewFromFloat(24.8))
//	v.Credit(2010, decimal.NewFromInt(31))
//
//	v.IsBalancedCreditDebit() // true
//
// Verification numbers are assigned by the book in strictly increasing
// order starting at 1. Fiscal years form a single contiguous range built
// incrementally from either end. Doctor audits a live book and reports
// warnings instead of failing.
//
// All monetary amounts are shopspring/decimal values; debit and credit
// amounts are rounded to the book's configured precision (default 2
// decimal places) before posting.
//
// The engine is single-threaded by design: a Book and everything it owns
// must be confined to one goroutine.
package ledgerbook

package ledgerbook

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Version is the export format version. Import refuses data produced by a
// different version.
const Version = "1.0.0"

// Export format discriminators.
const (
	FormatBook         = "book"
	FormatAccount      = "account"
	FormatVerification = "verification"
)

// TransactionExport is one account-side transaction in an account export.
type TransactionExport struct {
	Verification int             `json:"verification"`
	Amount       decimal.Decimal `json:"amount"`
}

// LineExport is one verification-side line in a verification export.
type LineExport struct {
	Account int             `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// AccountExport is the plain-data form of an Account. The header fields are
// suppressed when the account is nested inside a book export.
type AccountExport struct {
	Format  string `json:"_format,omitempty"`
	Version string `json:"_version,omitempty"`

	Number  int                 `json:"number"`
	Name    string              `json:"name"`
	Debits  []TransactionExport `json:"debits"`
	Credits []TransactionExport `json:"credits"`
}

// VerificationExport is the plain-data form of a Verification. The header
// fields are suppressed when the verification is nested inside a book
// export.
type VerificationExport struct {
	Format  string `json:"_format,omitempty"`
	Version string `json:"_version,omitempty"`

	Number  int          `json:"number"`
	Date    string       `json:"date"`
	Text    string       `json:"text"`
	Debits  []LineExport `json:"debits"`
	Credits []LineExport `json:"credits"`
}

// BookExport is the plain-data form of a Book: its accounts, its
// verifications, and the names of the extensions it was built with.
type BookExport struct {
	Format  string `json:"_format,omitempty"`
	Version string `json:"_version,omitempty"`

	Accounts      []AccountExport      `json:"accounts"`
	Verifications []VerificationExport `json:"verifications"`
	Extensions    []string             `json:"extensions"`
}

// Export serializes the account. With header set, the export carries the
// format discriminator and version for standalone use.
func (a *Account) Export(header bool) AccountExport {
	out := AccountExport{
		Number:  a.Number,
		Name:    a.Name,
		Debits:  make([]TransactionExport, 0, len(a.debits)),
		Credits: make([]TransactionExport, 0, len(a.credits)),
	}
	if header {
		out.Format = FormatAccount
		out.Version = Version
	}

	for _, t := range a.debits {
		out.Debits = append(out.Debits, TransactionExport{Verification: t.VerificationNumber, Amount: t.Amount})
	}
	for _, t := range a.credits {
		out.Credits = append(out.Credits, TransactionExport{Verification: t.VerificationNumber, Amount: t.Amount})
	}
	return out
}

// Export serializes the verification. With header set, the export carries
// the format discriminator and version for standalone use.
func (v *Verification) Export(header bool) VerificationExport {
	out := VerificationExport{
		Number:  v.Number,
		Date:    v.Date.String(),
		Text:    v.Text,
		Debits:  make([]LineExport, 0, len(v.debits)),
		Credits: make([]LineExport, 0, len(v.credits)),
	}
	if header {
		out.Format = FormatVerification
		out.Version = Version
	}

	for _, line := range v.debits {
		out.Debits = append(out.Debits, LineExport{Account: line.AccountNumber, Amount: line.Amount})
	}
	for _, line := range v.credits {
		out.Credits = append(out.Credits, LineExport{Account: line.AccountNumber, Amount: line.Amount})
	}
	return out
}

// Export serializes the whole book: accounts in ascending number order,
// verifications in number order, extension names in registration order.
// Nested entity exports have their headers suppressed.
func (b *Book) Export() BookExport {
	out := BookExport{
		Format:        FormatBook,
		Version:       Version,
		Accounts:      make([]AccountExport, 0, len(b.accounts)),
		Verifications: make([]VerificationExport, 0, len(b.verifications)),
		Extensions:    b.extensions.Names(),
	}

	accounts, _ := b.GetAccounts("")
	for _, account := range accounts {
		out.Accounts = append(out.Accounts, account.Export(false))
	}

	for number := 1; number <= len(b.verifications); number++ {
		out.Verifications = append(out.Verifications, b.verifications[number].Export(false))
	}
	return out
}

// ImportBook reconstructs an exported book into b by replaying account and
// verification creation through the public API, so every invariant the API
// enforces holds for imported data too. Extensions referenced by the export
// must already be registered on b; they are never applied automatically.
func ImportBook(b *Book, data BookExport) error {
	if data.Version != "" && data.Version != Version {
		return fmt.Errorf("%w: data version %q, running version %q", ErrVersionMismatch, data.Version, Version)
	}
	if data.Format != "" && data.Format != FormatBook {
		return fmt.Errorf("%w: expected %q, got %q", ErrFormatMismatch, FormatBook, data.Format)
	}

	// Extensions first: they can alter how accounts and verifications are
	// added to the book.
	for _, name := range data.Extensions {
		if !b.Using(name) {
			return fmt.Errorf("%w: import data requires extension %q", ErrMissingExtension, name)
		}
	}

	for _, account := range data.Accounts {
		existing := b.GetAccount(account.Number)
		if existing == nil {
			if _, err := b.CreateAccount(account.Number, account.Name); err != nil {
				return err
			}
		} else if existing.Name != account.Name {
			return fmt.Errorf("%w: account %d already exists as %q, import says %q",
				ErrConflict, account.Number, existing.Name, account.Name)
		}
	}

	for _, record := range data.Verifications {
		created, err := b.CreateVerification(record.Date, record.Text)
		if err != nil {
			return err
		}
		if created.Number != record.Number {
			return fmt.Errorf("%w: replayed verification got number %d, import says %d",
				ErrNumberingMismatch, created.Number, record.Number)
		}

		for _, debit := range record.Debits {
			if err := created.Debit(debit.Account, debit.Amount); err != nil {
				return err
			}
		}
		for _, credit := range record.Credits {
			if err := created.Credit(credit.Account, credit.Amount); err != nil {
				return err
			}
		}
	}
	return nil
}

// Import is ImportBook bound to the receiver.
func (b *Book) Import(data BookExport) error {
	return ImportBook(b, data)
}

// MarshalBook renders a book export as indented JSON.
func MarshalBook(b *Book) ([]byte, error) {
	return json.MarshalIndent(b.Export(), "", "  ")
}

// UnmarshalBook parses JSON produced by MarshalBook. Amounts are accepted
// both as JSON strings and as bare numbers.
func UnmarshalBook(data []byte) (BookExport, error) {
	var out BookExport
	if err := json.Unmarshal(data, &out); err != nil {
		return BookExport{}, fmt.Errorf("%w: parsing book data: %v", ErrFormatMismatch, err)
	}
	return out, nil
}

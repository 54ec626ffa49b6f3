package ledgerbook

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ledgerbook/ledgerbook/dateutil"
	"github.com/ledgerbook/ledgerbook/numberutil"
)

// Classifier is a predicate over accounts used to group them into report
// categories. An account belongs to a classification only if every
// classifier registered under that type returns true.
type Classifier func(*Account) bool

// Book is a bookkeeping book holding accounts, verifications, fiscal years
// and extensions. Create one with New and mutate it only through its
// methods. A Book is not safe for concurrent use.
type Book struct {
	accounts      map[int]*Account
	verifications map[int]*Verification
	classifiers   map[string][]Classifier
	extensions    *ExtensionHandler
	fiscalYears   *FiscalYearHandler

	precision int32
	logger    *slog.Logger
}

// Option configures a Book.
type Option func(*Book)

// WithPrecision sets the number of decimal places debit and credit amounts
// are rounded to before posting. The default is 2.
func WithPrecision(places int32) Option {
	return func(b *Book) {
		b.precision = places
	}
}

// WithLogger sets the logger used for extension lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Book) {
		b.logger = logger
		b.extensions.logger = logger
	}
}

// New creates an empty Book.
func New(opts ...Option) *Book {
	b := &Book{
		accounts:      make(map[int]*Account),
		verifications: make(map[int]*Verification),
		classifiers:   make(map[string][]Classifier),
		extensions:    newExtensionHandler(),
		fiscalYears:   NewFiscalYearHandler(),
		precision:     numberutil.DefaultPrecision,
		logger:        slog.Default(),
	}
	b.extensions.logger = b.logger

	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Precision returns the number of decimal places amounts are rounded to.
func (b *Book) Precision() int32 {
	return b.precision
}

// CreateAccount creates an account with the given number and name and adds
// it to the book. Account numbers must be unique within the book; names
// should be unique by convention but this is not enforced.
func (b *Book) CreateAccount(number int, name string) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: account name must be non-empty", ErrInvalidArgument)
	}
	if _, exists := b.accounts[number]; exists {
		return nil, fmt.Errorf("%w: account %d already exists", ErrConflict, number)
	}

	account := &Account{book: b, Number: number, Name: name}
	b.accounts[number] = account
	return account, nil
}

// GetAccount returns the account with the given number, or nil if the book
// has no such account. Absence is a valid answer, not an error.
func (b *Book) GetAccount(number int) *Account {
	return b.accounts[number]
}

// AddClassifier registers a classifier predicate under the given type name.
// Multiple classifiers may share a type; accounts must satisfy all of them
// to belong to the classification.
func (b *Book) AddClassifier(classifierType string, classifier Classifier) error {
	if strings.TrimSpace(classifierType) == "" {
		return fmt.Errorf("%w: classifier type must be non-empty", ErrInvalidArgument)
	}
	if classifier == nil {
		return fmt.Errorf("%w: classifier function required", ErrInvalidArgument)
	}

	b.classifiers[classifierType] = append(b.classifiers[classifierType], classifier)
	return nil
}

// GetAccounts returns the book's accounts in ascending number order. With a
// non-empty classifierType only the accounts satisfying every classifier of
// that type are returned. An unregistered type is an error rather than an
// empty result, so typos in calling code surface immediately.
func (b *Book) GetAccounts(classifierType string) ([]*Account, error) {
	var classifiers []Classifier
	if classifierType != "" {
		classifiers = b.classifiers[classifierType]
		if len(classifiers) == 0 {
			return nil, fmt.Errorf("%w: unknown classifier type %q", ErrInvalidArgument, classifierType)
		}
	}

	result := make([]*Account, 0, len(b.accounts))
	for _, account := range b.accounts {
		good := true
		for _, classifier := range classifiers {
			if !classifier(account) {
				good = false
				break
			}
		}
		if good {
			result = append(result, account)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Number < result[j].Number
	})
	return result, nil
}

// CreateVerification creates a verification dated at the given "YYYY-MM-DD"
// date and adds it to the book. The book assigns the next sequential
// verification number, starting at 1. Registered extensions implementing
// VerificationObserver are notified in registration order and receive the
// extra arguments unchanged.
func (b *Book) CreateVerification(date, text string, extra ...any) (*Verification, error) {
	d, err := dateutil.Parse(date)
	if err != nil {
		return nil, fmt.Errorf("%w: verification date: %v", ErrInvalidArgument, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: verification text must be non-empty", ErrInvalidArgument)
	}

	number := len(b.verifications) + 1
	if _, occupied := b.verifications[number]; occupied {
		return nil, fmt.Errorf("%w: verification number %d already occupied", ErrInternal, number)
	}

	verification := &Verification{book: b, Number: number, Date: d, Text: text}
	b.verifications[number] = verification

	b.extensions.emitVerificationCreated(b, verification, extra...)

	return verification, nil
}

// GetVerification returns the verification with the given number, or nil if
// the book has no such verification.
func (b *Book) GetVerification(number int) *Verification {
	return b.verifications[number]
}

// GetVerifications returns all verifications dated within the inclusive
// range [from, to] in ascending number order. An empty string leaves that
// side of the range unbounded.
func (b *Book) GetVerifications(from, to string) ([]*Verification, error) {
	fromDate, err := parseBound(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseBound(to)
	if err != nil {
		return nil, err
	}

	var result []*Verification
	for number := 1; number <= len(b.verifications); number++ {
		v := b.verifications[number]
		if dateutil.InRange(v.Date, fromDate, toDate) {
			result = append(result, v)
		}
	}
	return result, nil
}

// Use registers an extension on the book and initializes it immediately.
// Extension names must be unique within the book.
func (b *Book) Use(extension Extension) error {
	return b.extensions.Register(b, extension)
}

// Using reports whether an extension is registered on the book. It accepts
// an extension name or an Extension value, which is compared by name.
func (b *Book) Using(extension any) bool {
	return b.extensions.IsRegistered(extension)
}

// GetExtension returns the registered extension with the given name, or nil
// if no such extension is registered.
func (b *Book) GetExtension(name string) Extension {
	return b.extensions.Get(name)
}

// CreateFiscalYear creates a fiscal year spanning the inclusive
// "YYYY-MM-DD" range [from, to] and adds it to the book. Every fiscal year
// after the first must be day-adjacent to the current range. Registered
// extensions implementing FiscalYearObserver are notified in registration
// order and receive the extra arguments unchanged.
func (b *Book) CreateFiscalYear(from, to string, extra ...any) (*FiscalYear, error) {
	fiscalYear, err := b.fiscalYears.Create(from, to)
	if err != nil {
		return nil, err
	}

	b.extensions.emitFiscalYearCreated(b, fiscalYear, extra...)

	return fiscalYear, nil
}

// FiscalYearAt returns the fiscal year at the given 1-based chronological
// position, or nil if the position is out of range.
func (b *Book) FiscalYearAt(position int) *FiscalYear {
	return b.fiscalYears.At(position)
}

// FiscalYearContaining returns the fiscal year whose range contains the
// given "YYYY-MM-DD" date, or nil if no fiscal year contains it.
func (b *Book) FiscalYearContaining(date string) (*FiscalYear, error) {
	return b.fiscalYears.Containing(date)
}

// LastFiscalYear returns the chronologically last fiscal year, or nil if
// the book has none.
func (b *Book) LastFiscalYear() *FiscalYear {
	return b.fiscalYears.Last()
}

// FiscalYears returns the book's fiscal years in chronological order.
func (b *Book) FiscalYears() []*FiscalYear {
	return b.fiscalYears.All()
}

// Doctor audits the book and returns human-readable warnings about
// unbalanced verifications, verifications dated outside the registered
// fiscal years, and anything reported by extensions implementing Auditor.
// It never fails; an imperfect ledger is reported, not rejected.
func (b *Book) Doctor() []string {
	var warnings []string

	for number := 1; number <= len(b.verifications); number++ {
		if !b.verifications[number].IsBalancedCreditDebit() {
			warnings = append(warnings, fmt.Sprintf("Invalid verification: %d is unbalanced.", number))
		}
	}

	warnings = append(warnings, b.verificationsOutOfFiscalYears()...)
	warnings = append(warnings, b.extensions.emitAudit(b)...)

	return warnings
}

func (b *Book) verificationsOutOfFiscalYears() []string {
	years := b.fiscalYears.All()
	if len(years) == 0 {
		if len(b.verifications) > 0 {
			return []string{"Verifications exist without any fiscal years present."}
		}
		return nil
	}

	start := years[0].From
	end := years[len(years)-1].To

	var warnings []string
	for number := 1; number <= len(b.verifications); number++ {
		v := b.verifications[number]
		if v.Date.Before(start) || v.Date.After(end) {
			warnings = append(warnings, fmt.Sprintf(
				"Verification out of fiscal years range. Verification: %d. Fiscal year range: %s to %s.",
				number, start, end))
		}
	}
	return warnings
}

// parseBound parses an optional "YYYY-MM-DD" range bound. An empty string
// means the range is unbounded on that side.
func parseBound(s string) (dateutil.Date, error) {
	if s == "" {
		return dateutil.Date{}, nil
	}
	d, err := dateutil.Parse(s)
	if err != nil {
		return dateutil.Date{}, fmt.Errorf("%w: range bound: %v", ErrInvalidArgument, err)
	}
	return d, nil
}

package ledgerbook

import "errors"

// Sentinel errors for the failure kinds the ledger reports. Operations wrap
// these with context via fmt.Errorf and %w, so callers match with errors.Is.
var (
	// ErrInvalidArgument reports a bad type, bad range or empty required text.
	ErrInvalidArgument = errors.New("ledgerbook: invalid argument")

	// ErrConflict reports a duplicate account number, duplicate extension
	// name, or an import account whose name differs from the existing one.
	ErrConflict = errors.New("ledgerbook: conflict")

	// ErrNotFound reports an unknown account or verification reference
	// inside a transaction.
	ErrNotFound = errors.New("ledgerbook: not found")

	// Import header errors.
	ErrVersionMismatch = errors.New("ledgerbook: version mismatch")
	ErrFormatMismatch  = errors.New("ledgerbook: format mismatch")

	// ErrMissingExtension reports import data that requires an extension
	// not registered on the target book.
	ErrMissingExtension = errors.New("ledgerbook: missing extension")

	// Invariant violations. Unreachable in correct code.
	ErrNumberingMismatch = errors.New("ledgerbook: verification numbering mismatch")
	ErrInternal          = errors.New("ledgerbook: internal error")
)

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsInvalidArgument reports whether err is an invalid-argument error.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

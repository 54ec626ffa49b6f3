package ledgerbook

import (
	"fmt"
	"log/slog"
	"strings"
)

// Extension is a named plugin applied to a Book. Init is called exactly
// once, synchronously, when the extension is registered; it may attach
// classifiers, accounts or any other state to the book. Extensions extend
// their reach by additionally implementing VerificationObserver,
// FiscalYearObserver or Auditor.
type Extension interface {
	Name() string
	Init(b *Book) error
}

// VerificationObserver is implemented by extensions that want to react to
// every verification created on the book, e.g. to attach computed fields.
// The extra arguments are passed through from Book.CreateVerification
// unchanged.
type VerificationObserver interface {
	Extension
	VerificationCreated(b *Book, v *Verification, extra ...any)
}

// FiscalYearObserver is implemented by extensions that want to react to
// every fiscal year created on the book.
type FiscalYearObserver interface {
	Extension
	FiscalYearCreated(b *Book, fy *FiscalYear, extra ...any)
}

// Auditor is implemented by extensions that contribute warnings to
// Book.Doctor.
type Auditor interface {
	Extension
	Audit(b *Book) []string
}

// ExtensionHandler is the per-book registry of extensions. It caches which
// optional hooks each extension implements at registration time and
// dispatches them in registration order; extensions with ordering-sensitive
// side effects can rely on that.
type ExtensionHandler struct {
	logger *slog.Logger

	order  []Extension
	byName map[string]Extension

	verificationObservers []VerificationObserver
	fiscalYearObservers   []FiscalYearObserver
	auditors              []Auditor
}

func newExtensionHandler() *ExtensionHandler {
	return &ExtensionHandler{
		logger: slog.Default(),
		byName: make(map[string]Extension),
	}
}

// Register stores the extension and immediately initializes it against the
// given book. An Init error propagates to the caller with the registration
// already recorded; a failing initializer is a caller bug, not a
// recoverable condition, and no rollback is attempted.
func (h *ExtensionHandler) Register(b *Book, extension Extension) error {
	if extension == nil || strings.TrimSpace(extension.Name()) == "" {
		return fmt.Errorf("%w: extension must have a non-empty name", ErrInvalidArgument)
	}

	name := extension.Name()
	if _, exists := h.byName[name]; exists {
		return fmt.Errorf("%w: extension %q already registered", ErrConflict, name)
	}

	h.byName[name] = extension
	h.order = append(h.order, extension)

	if v, ok := extension.(VerificationObserver); ok {
		h.verificationObservers = append(h.verificationObservers, v)
	}
	if v, ok := extension.(FiscalYearObserver); ok {
		h.fiscalYearObservers = append(h.fiscalYearObservers, v)
	}
	if v, ok := extension.(Auditor); ok {
		h.auditors = append(h.auditors, v)
	}

	h.logger.Debug("extension registered", "name", name, "hooks", hookNames(extension))

	return extension.Init(b)
}

// IsRegistered reports whether an extension is registered. It accepts an
// extension name or an Extension value, which is compared by name. It is a
// pure lookup and never fails; anything else returns false.
func (h *ExtensionHandler) IsRegistered(extension any) bool {
	switch e := extension.(type) {
	case string:
		_, ok := h.byName[e]
		return ok
	case Extension:
		if e == nil {
			return false
		}
		_, ok := h.byName[e.Name()]
		return ok
	default:
		return false
	}
}

// Get returns the registered extension with the given name, or nil.
func (h *ExtensionHandler) Get(name string) Extension {
	return h.byName[name]
}

// Names returns the names of the registered extensions in registration order.
func (h *ExtensionHandler) Names() []string {
	names := make([]string, len(h.order))
	for i, extension := range h.order {
		names[i] = extension.Name()
	}
	return names
}

// Hook dispatch. Observers are just that: their return values, if any, are
// discarded, and anything they want to contribute must be done by mutating
// the passed-in values.

func (h *ExtensionHandler) emitVerificationCreated(b *Book, v *Verification, extra ...any) {
	for _, observer := range h.verificationObservers {
		observer.VerificationCreated(b, v, extra...)
	}
}

func (h *ExtensionHandler) emitFiscalYearCreated(b *Book, fy *FiscalYear, extra ...any) {
	for _, observer := range h.fiscalYearObservers {
		observer.FiscalYearCreated(b, fy, extra...)
	}
}

func (h *ExtensionHandler) emitAudit(b *Book) []string {
	var warnings []string
	for _, auditor := range h.auditors {
		warnings = append(warnings, auditor.Audit(b)...)
	}
	return warnings
}

func hookNames(extension Extension) []string {
	var hooks []string
	if _, ok := extension.(VerificationObserver); ok {
		hooks = append(hooks, "VerificationCreated")
	}
	if _, ok := extension.(FiscalYearObserver); ok {
		hooks = append(hooks, "FiscalYearCreated")
	}
	if _, ok := extension.(Auditor); ok {
		hooks = append(hooks, "Audit")
	}
	return hooks
}

package ledgerbook

import (
	"fmt"

	"github.com/ledgerbook/ledgerbook/dateutil"
)

// FiscalYear is an inclusive calendar-date range partitioning a book's
// timeline for reporting. From is always strictly before To.
type FiscalYear struct {
	From dateutil.Date
	To   dateutil.Date
}

// String formats the fiscal year as "YYYY-MM-DD to YYYY-MM-DD".
func (fy *FiscalYear) String() string {
	return fmt.Sprintf("%s to %s", fy.From, fy.To)
}

// Contains reports whether the given date lies inside the fiscal year.
func (fy *FiscalYear) Contains(d dateutil.Date) bool {
	return dateutil.InRange(d, fy.From, fy.To)
}

// FiscalYearHandler maintains a book's fiscal years as a strictly ordered,
// gap-free, non-overlapping sequence. Fiscal years are only ever added,
// never removed, and each new one must extend the current range by exactly
// one day at either end.
type FiscalYearHandler struct {
	years []*FiscalYear
}

// NewFiscalYearHandler creates an empty handler.
func NewFiscalYearHandler() *FiscalYearHandler {
	return &FiscalYearHandler{}
}

// Create creates a fiscal year spanning the inclusive "YYYY-MM-DD" range
// [from, to] and inserts it at whichever end of the current range it is
// day-adjacent to. The first fiscal year may span any valid range.
func (h *FiscalYearHandler) Create(from, to string) (*FiscalYear, error) {
	fromDate, err := dateutil.Parse(from)
	if err != nil {
		return nil, fmt.Errorf("%w: fiscal year start: %v", ErrInvalidArgument, err)
	}
	toDate, err := dateutil.Parse(to)
	if err != nil {
		return nil, fmt.Errorf("%w: fiscal year end: %v", ErrInvalidArgument, err)
	}
	if fromDate.Compare(toDate) >= 0 {
		return nil, fmt.Errorf("%w: fiscal year start %s must be before end %s", ErrInvalidArgument, fromDate, toDate)
	}

	fiscalYear := &FiscalYear{From: fromDate, To: toDate}

	if len(h.years) == 0 {
		h.years = append(h.years, fiscalYear)
		return fiscalYear, nil
	}

	earliest := h.years[0].From
	latest := h.years[len(h.years)-1].To

	switch {
	case fiscalYear.To.AddDays(1).Equal(earliest):
		h.years = append([]*FiscalYear{fiscalYear}, h.years...)
	case latest.AddDays(1).Equal(fiscalYear.From):
		h.years = append(h.years, fiscalYear)
	default:
		return nil, fmt.Errorf("%w: fiscal year %s must be adjacent to the current range %s to %s",
			ErrInvalidArgument, fiscalYear, earliest, latest)
	}
	return fiscalYear, nil
}

// At returns the fiscal year at the given 1-based chronological position,
// or nil if the position is out of range.
func (h *FiscalYearHandler) At(position int) *FiscalYear {
	if position < 1 || position > len(h.years) {
		return nil
	}
	return h.years[position-1]
}

// Containing returns the fiscal year whose range contains the given
// "YYYY-MM-DD" date, or nil if no fiscal year contains it.
func (h *FiscalYearHandler) Containing(date string) (*FiscalYear, error) {
	d, err := dateutil.Parse(date)
	if err != nil {
		return nil, fmt.Errorf("%w: fiscal year selector: %v", ErrInvalidArgument, err)
	}

	for _, fy := range h.years {
		if fy.Contains(d) {
			return fy, nil
		}
	}
	return nil, nil
}

// Last returns the chronologically last fiscal year, or nil if there are none.
func (h *FiscalYearHandler) Last() *FiscalYear {
	if len(h.years) == 0 {
		return nil
	}
	return h.years[len(h.years)-1]
}

// All returns the fiscal years in chronological order.
func (h *FiscalYearHandler) All() []*FiscalYear {
	out := make([]*FiscalYear, len(h.years))
	copy(out, h.years)
	return out
}

package rate

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRateRowNotFound = errors.New("rate row not found")
	ErrInvalidScheme   = errors.New("invalid rate scheme")
)

// MissingRateError is a fatal configuration error: no bracket covers the
// queried salary/date. Deductions are never silently defaulted to zero.
type MissingRateError struct {
	Scheme         Scheme
	OrganizationID string
	Salary         decimal.Decimal
	Date           time.Time
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf(
		"missing rate configuration: scheme=%s organization=%s salary=%s date=%s",
		e.Scheme, e.OrganizationID, e.Salary.StringFixed(2), e.Date.Format("2006-01-02"),
	)
}

// OverlapError reports two rows of the same scheme whose salary bands and
// validity windows intersect. Rate tables must stay partitioned so bracket
// resolution is unambiguous.
type OverlapError struct {
	Scheme Scheme
	RowA   string
	RowB   string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping %s rate rows: %s and %s", e.Scheme, e.RowA, e.RowB)
}

package attendance

import (
	"context"
	"time"
)

// TimeEntryRepository provides clock-in/out records.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// Close sets clock-out on an OPEN entry and marks it CLOSED.
	Close(ctx context.Context, entry TimeEntry) error

	// GetOpenEntry returns the employee's OPEN entry, if any.
	GetOpenEntry(ctx context.Context, employeeID string) (TimeEntry, error)

	// HasEntryForDate guards against double clock-in on one work date.
	HasEntryForDate(ctx context.Context, employeeID string, workDate time.Time) (bool, error)

	// ListClosedInRange returns CLOSED entries with WorkDate in [from, to].
	ListClosedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]TimeEntry, error)

	// ListBreaks returns the explicit break ledger for one entry.
	ListBreaks(ctx context.Context, timeEntryID string) ([]BreakRecord, error)
}

// OvertimeRepository provides approved overtime lookups.
type OvertimeRepository interface {
	// GetApprovedMinutes returns the approved overtime minutes for the
	// employee on workDate, or 0 when no APPROVED request exists.
	GetApprovedMinutes(ctx context.Context, employeeID string, workDate time.Time) (int, error)
}

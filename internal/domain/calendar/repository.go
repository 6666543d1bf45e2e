package calendar

import (
	"context"
	"time"
)

// HolidayRepository provides holiday/calendar data for one organization.
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string, organizationID string) error

	// ListInRange returns holidays relevant to [from, to]: non-recurring
	// holidays dated inside the range plus every recurring holiday.
	ListInRange(ctx context.Context, organizationID string, from, to time.Time) ([]Holiday, error)

	// ListOverrides returns per-employee holiday overrides dated in [from, to].
	ListOverrides(ctx context.Context, employeeID string, from, to time.Time) ([]EmployeeHolidayOverride, error)
}

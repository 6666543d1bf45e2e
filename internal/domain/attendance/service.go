package attendance

import "context"

// AttendanceService handles employee clock-in and clock-out.
type AttendanceService interface {
	// ClockIn opens a time entry for today. A second clock-in on the same
	// work date fails with ErrAlreadyClockedIn.
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)

	// ClockOut closes the employee's open entry.
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)
}

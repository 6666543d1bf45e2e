package attendance

import "time"

type TimeEntryStatus string

const (
	TimeEntryStatusOpen   TimeEntryStatus = "OPEN"
	TimeEntryStatusClosed TimeEntryStatus = "CLOSED"
)

// TimeEntry is one clock-in/clock-out pair. Created by clock-in, mutated
// once by clock-out, immutable after. Only CLOSED entries with a non-nil
// ClockOutAt contribute to pay and attendance.
type TimeEntry struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	WorkDate       time.Time
	ClockInAt      time.Time
	ClockOutAt     *time.Time
	Status         TimeEntryStatus
	LateMinutes    *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Closed reports whether the entry counts toward pay.
func (t TimeEntry) Closed() bool {
	return t.Status == TimeEntryStatusClosed && t.ClockOutAt != nil
}

// WorkedMinutes is the raw clocked span without break deduction.
func (t TimeEntry) WorkedMinutes() int {
	if !t.Closed() {
		return 0
	}
	return int(t.ClockOutAt.Sub(t.ClockInAt).Minutes())
}

// BreakRecord is one explicit unpaid break inside a time entry. When an
// entry has break records they are the source of truth for the unpaid-break
// deduction; the flat heuristic applies only when none exist.
type BreakRecord struct {
	ID          string
	TimeEntryID string
	StartAt     time.Time
	EndAt       *time.Time
	CreatedAt   time.Time
}

// Minutes is the break span; an unfinished break contributes zero.
func (b BreakRecord) Minutes() int {
	if b.EndAt == nil {
		return 0
	}
	return int(b.EndAt.Sub(b.StartAt).Minutes())
}

type OvertimeStatus string

const (
	OvertimeStatusPending   OvertimeStatus = "PENDING"
	OvertimeStatusApproved  OvertimeStatus = "APPROVED"
	OvertimeStatusRejected  OvertimeStatus = "REJECTED"
	OvertimeStatusCancelled OvertimeStatus = "CANCELLED"
)

// OvertimeRequest caps the overtime portion of a day's pay. Only APPROVED
// requests count.
type OvertimeRequest struct {
	ID              string
	EmployeeID      string
	WorkDate        time.Time
	ApprovedMinutes int
	Status          OvertimeStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveStatusApproved        LeaveRequestStatus = "approved"
	LeaveStatusRejected        LeaveRequestStatus = "rejected"
	LeaveStatusCancelled       LeaveRequestStatus = "cancelled"
)

// LeaveRequest covers an inclusive [StartDate, EndDate] span. Only approved
// requests excuse an employee from absence counting.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveRequestStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether date falls inside the request's span.
func (l LeaveRequest) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(l.StartDate.Truncate(24*time.Hour)) && !d.After(l.EndDate.Truncate(24*time.Hour))
}

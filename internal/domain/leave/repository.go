package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository provides approved leave lookups for the engine.
type LeaveRequestRepository interface {
	// ListApprovedInRange returns approved requests whose span intersects
	// [from, to].
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}

package schedule

import "context"

// WorkScheduleRepository provides one schedule per employee.
type WorkScheduleRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (WorkSchedule, error)
}

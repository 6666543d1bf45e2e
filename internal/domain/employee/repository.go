package employee

import (
	"context"
	"time"
)

// EmployeeRepository provides employee master data for the engine.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, organizationID string) (Employee, error)

	// GetLatestCompensation returns the compensation row effective as of
	// asOf, or ErrCompensationNotFound.
	GetLatestCompensation(ctx context.Context, employeeID string, asOf time.Time) (Compensation, error)
}

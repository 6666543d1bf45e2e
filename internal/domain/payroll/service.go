package payroll

import "context"

// PayrollService drives the payroll lifecycle. Organization and actor come
// from the JWT claims in ctx.
type PayrollService interface {
	// Generate computes and persists a payroll for the employee and period.
	// Generating twice for the same active (employee, period) returns the
	// existing payroll instead of creating a duplicate.
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)

	// Recalculate recomputes a DRAFT or COMPUTED payroll from current
	// attendance and rate data, replacing its line items.
	Recalculate(ctx context.Context, id string) (PayrollResponse, error)

	Approve(ctx context.Context, id string) (PayrollResponse, error)
	Release(ctx context.Context, id string) (PayrollResponse, error)
	Void(ctx context.Context, req VoidPayrollRequest) (PayrollResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter Filter) (ListPayrollResponse, error)
	GetLogs(ctx context.Context, id string) ([]LogResponse, error)
}

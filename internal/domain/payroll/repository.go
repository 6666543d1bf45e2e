package payroll

import (
	"context"
	"time"
)

// PayrollRepository persists payroll aggregates. CommitComputation and
// UpdateStatus are single atomic operations: a partial failure must leave no
// payroll, line-item, or log rows behind.
type PayrollRepository interface {
	// GetByID retrieves a payroll with organization isolation.
	GetByID(ctx context.Context, id string, organizationID string) (Payroll, error)

	// GetActiveByEmployeePeriod returns the non-VOIDED payroll for the
	// exact (employee, period), or ErrPayrollNotFound.
	GetActiveByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (Payroll, error)

	List(ctx context.Context, organizationID string, filter Filter) ([]Payroll, int64, error)

	// CommitComputation atomically upserts the payroll, replaces its line
	// items, and appends a log entry. A unique violation on the active
	// (employee, period) index surfaces as ErrPayrollAlreadyExists.
	CommitComputation(ctx context.Context, p Payroll, earnings []Earning, deductions []Deduction, log Log) (Payroll, error)

	// UpdateStatus atomically writes the transition fields and appends a
	// log entry.
	UpdateStatus(ctx context.Context, p Payroll, log Log) error

	ListEarnings(ctx context.Context, payrollID string) ([]Earning, error)
	ListDeductions(ctx context.Context, payrollID string) ([]Deduction, error)
	ListLogs(ctx context.Context, payrollID string) ([]Log, error)
}

type Filter struct {
	EmployeeID  string
	Status      string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Page        int
	Limit       int
}

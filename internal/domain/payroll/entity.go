package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the payroll lifecycle state. VOIDED is terminal; a RELEASED
// payroll can no longer be voided or recomputed.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusComputed Status = "COMPUTED"
	StatusApproved Status = "APPROVED"
	StatusReleased Status = "RELEASED"
	StatusVoided   Status = "VOIDED"
)

// Payroll is the computed aggregate for one employee and period. Owned
// exclusively by the payroll service; line items are recreated wholesale on
// recalculation, never edited in place. TotalDeductions covers the four
// statutory amounts plus the late and absence policy deductions, so it
// equals Tax+Philhealth+SSS+Pagibig only when the policy deductions are
// zero.
type Payroll struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	PeriodStart    time.Time
	PeriodEnd      time.Time

	GrossPay      decimal.Decimal
	TaxableIncome decimal.Decimal

	Tax        decimal.Decimal
	Philhealth decimal.Decimal
	SSS        decimal.Decimal
	Pagibig    decimal.Decimal

	LateDeduction    decimal.Decimal
	AbsenceDeduction decimal.Decimal

	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	AbsentDays    int
	LateMinutes   int
	LateInstances int

	Status     Status
	ComputedAt *time.Time
	ApprovedBy *string
	ApprovedAt *time.Time
	ReleasedBy *string
	ReleasedAt *time.Time
	VoidedBy   *string
	VoidedAt   *time.Time
	VoidReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EarningType string

const (
	EarningRegular   EarningType = "REGULAR"
	EarningOvertime  EarningType = "OVERTIME"
	EarningNightDiff EarningType = "NIGHT_DIFF"
)

// Earning is one itemized pay bucket. Created once at computation time and
// never mutated.
type Earning struct {
	ID        string
	PayrollID string
	Type      EarningType
	Minutes   int
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// DeductionType tags each itemized deduction, statutory or policy.
type DeductionType string

const (
	DeductionTax        DeductionType = "TAX"
	DeductionPhilhealth DeductionType = "PHILHEALTH"
	DeductionSSS        DeductionType = "SSS"
	DeductionPagibig    DeductionType = "PAGIBIG"
	DeductionLate       DeductionType = "LATE"
	DeductionAbsence    DeductionType = "ABSENCE"
)

type Deduction struct {
	ID        string
	PayrollID string
	Type      DeductionType
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Log is one append-only audit entry for a status transition.
type Log struct {
	ID             string
	PayrollID      string
	Action         string
	PreviousStatus Status
	NewStatus      Status
	Reason         *string
	UserID         string
	CreatedAt      time.Time
}

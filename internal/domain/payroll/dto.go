package payroll

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r GeneratePayrollRequest) Period() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.PeriodStart)
	end, _ := validator.IsValidDate(r.PeriodEnd)
	return start, end
}

type VoidPayrollRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r VoidPayrollRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EarningResponse struct {
	Type    string          `json:"type"`
	Minutes int             `json:"minutes"`
	Amount  decimal.Decimal `json:"amount"`
}

type DeductionResponse struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

type PayrollResponse struct {
	ID               string              `json:"id"`
	EmployeeID       string              `json:"employee_id"`
	PeriodStart      string              `json:"period_start"`
	PeriodEnd        string              `json:"period_end"`
	GrossPay         decimal.Decimal     `json:"gross_pay"`
	TaxableIncome    decimal.Decimal     `json:"taxable_income"`
	Tax              decimal.Decimal     `json:"tax"`
	Philhealth       decimal.Decimal     `json:"philhealth"`
	SSS              decimal.Decimal     `json:"sss"`
	Pagibig          decimal.Decimal     `json:"pagibig"`
	LateDeduction    decimal.Decimal     `json:"late_deduction"`
	AbsenceDeduction decimal.Decimal     `json:"absence_deduction"`
	TotalDeductions  decimal.Decimal     `json:"total_deductions"`
	NetPay           decimal.Decimal     `json:"net_pay"`
	AbsentDays       int                 `json:"absent_days"`
	LateMinutes      int                 `json:"late_minutes"`
	LateInstances    int                 `json:"late_instances"`
	Status           string              `json:"status"`
	Earnings         []EarningResponse   `json:"earnings,omitempty"`
	Deductions       []DeductionResponse `json:"deductions,omitempty"`
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type LogResponse struct {
	Action         string  `json:"action"`
	PreviousStatus string  `json:"previous_status"`
	NewStatus      string  `json:"new_status"`
	Reason         *string `json:"reason,omitempty"`
	UserID         string  `json:"user_id"`
	CreatedAt      string  `json:"created_at"`
}

package policy

import (
	"slices"

	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLatePolicyRequest struct {
	Method             string           `json:"method"`
	Amount             decimal.Decimal  `json:"amount"`
	Percentage         decimal.Decimal  `json:"percentage"`
	HourlyMultiplier   decimal.Decimal  `json:"hourly_multiplier"`
	MinLateMinutes     int              `json:"min_late_minutes"`
	MaxDeductionPerDay *decimal.Decimal `json:"max_deduction_per_day"`
	EffectiveFrom      string           `json:"effective_from"`
	EffectiveTo        *string          `json:"effective_to"`
}

func (r CreateLatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors
	if !slices.Contains(DeductionMethodValues, r.Method) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "must be one of FIXED_AMOUNT, PERCENTAGE, HOURLY_RATE"})
	}
	if r.MinLateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "min_late_minutes", Message: "must not be negative"})
	}
	if r.MaxDeductionPerDay != nil && r.MaxDeductionPerDay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "max_deduction_per_day", Message: "must not be negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EffectiveTo != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	switch DeductionMethod(r.Method) {
	case MethodFixedAmount:
		if !r.Amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive for FIXED_AMOUNT"})
		}
	case MethodPercentage:
		if !r.Percentage.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be positive for PERCENTAGE"})
		}
	case MethodHourlyRate:
		if !r.HourlyMultiplier.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "hourly_multiplier", Message: "must be positive for HOURLY_RATE"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPolicy builds the entity; Validate must have passed.
func (r CreateLatePolicyRequest) ToPolicy(organizationID string) LateDeductionPolicy {
	from, _ := validator.IsValidDate(r.EffectiveFrom)
	p := LateDeductionPolicy{
		OrganizationID:     organizationID,
		Method:             DeductionMethod(r.Method),
		Amount:             r.Amount,
		Percentage:         r.Percentage,
		HourlyMultiplier:   r.HourlyMultiplier,
		MinLateMinutes:     r.MinLateMinutes,
		MaxDeductionPerDay: r.MaxDeductionPerDay,
		EffectiveFrom:      from,
	}
	if r.EffectiveTo != nil {
		to, _ := validator.IsValidDate(*r.EffectiveTo)
		p.EffectiveTo = &to
	}
	return p
}

type LatePolicyResponse struct {
	ID                 string           `json:"id"`
	Method             string           `json:"method"`
	Amount             decimal.Decimal  `json:"amount"`
	Percentage         decimal.Decimal  `json:"percentage"`
	HourlyMultiplier   decimal.Decimal  `json:"hourly_multiplier"`
	MinLateMinutes     int              `json:"min_late_minutes"`
	MaxDeductionPerDay *decimal.Decimal `json:"max_deduction_per_day,omitempty"`
	EffectiveFrom      string           `json:"effective_from"`
	EffectiveTo        *string          `json:"effective_to,omitempty"`
}

func ToResponse(p LateDeductionPolicy) LatePolicyResponse {
	resp := LatePolicyResponse{
		ID:                 p.ID,
		Method:             string(p.Method),
		Amount:             p.Amount,
		Percentage:         p.Percentage,
		HourlyMultiplier:   p.HourlyMultiplier,
		MinLateMinutes:     p.MinLateMinutes,
		MaxDeductionPerDay: p.MaxDeductionPerDay,
		EffectiveFrom:      p.EffectiveFrom.Format("2006-01-02"),
	}
	if p.EffectiveTo != nil {
		to := p.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}

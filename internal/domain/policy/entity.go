package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionMethod selects how a late deduction is computed.
type DeductionMethod string

const (
	// MethodFixedAmount deducts Amount once per late instance.
	MethodFixedAmount DeductionMethod = "FIXED_AMOUNT"
	// MethodPercentage deducts Percentage of the employee's daily rate.
	MethodPercentage DeductionMethod = "PERCENTAGE"
	// MethodHourlyRate deducts hourly rate x late hours x HourlyMultiplier.
	MethodHourlyRate DeductionMethod = "HOURLY_RATE"
)

var DeductionMethodValues = []string{
	string(MethodFixedAmount),
	string(MethodPercentage),
	string(MethodHourlyRate),
}

// LateDeductionPolicy is the organization's effective-dated lateness rule.
type LateDeductionPolicy struct {
	ID                 string
	OrganizationID     string
	Method             DeductionMethod
	Amount             decimal.Decimal
	Percentage         decimal.Decimal
	HourlyMultiplier   decimal.Decimal
	MinLateMinutes     int
	MaxDeductionPerDay *decimal.Decimal
	EffectiveFrom      time.Time
	EffectiveTo        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EffectiveOn reports whether the policy's window covers date.
func (p LateDeductionPolicy) EffectiveOn(date time.Time) bool {
	if date.Before(p.EffectiveFrom) {
		return false
	}
	return p.EffectiveTo == nil || !date.After(*p.EffectiveTo)
}

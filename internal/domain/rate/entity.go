package rate

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scheme identifies one of the statutory rate tables.
type Scheme string

const (
	SchemeTax        Scheme = "tax"
	SchemePhilhealth Scheme = "philhealth"
	SchemeSSS        Scheme = "sss"
	SchemePagibig    Scheme = "pagibig"
)

var SchemeValues = []string{
	string(SchemeTax),
	string(SchemePhilhealth),
	string(SchemeSSS),
	string(SchemePagibig),
}

// Row is one salary- and date-bounded bracket of a scheme's rate table.
// A nil MaxSalary means the bracket is open-ended upward; a nil EffectiveTo
// means the row is currently active.
//
// Scheme-specific fields: tax rows use BaseTax/TaxRate, contribution rows
// use EmployeeRate/EmployerRate, and SSS rows additionally carry ECRate.
type Row struct {
	ID             string
	OrganizationID string
	Scheme         Scheme
	MinSalary      decimal.Decimal
	MaxSalary      *decimal.Decimal
	EffectiveFrom  time.Time
	EffectiveTo    *time.Time

	BaseTax decimal.Decimal
	TaxRate decimal.Decimal

	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal
	ECRate       decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveOn reports whether the row's validity window covers date.
func (r Row) EffectiveOn(date time.Time) bool {
	if date.Before(r.EffectiveFrom) {
		return false
	}
	return r.EffectiveTo == nil || !date.After(*r.EffectiveTo)
}

// CoversSalary reports whether salary falls inside the row's bracket.
func (r Row) CoversSalary(salary decimal.Decimal) bool {
	if salary.LessThan(r.MinSalary) {
		return false
	}
	return r.MaxSalary == nil || !salary.GreaterThan(*r.MaxSalary)
}

// OpenEnded reports whether the row is the open-ended top bracket.
func (r Row) OpenEnded() bool {
	return r.MaxSalary == nil
}

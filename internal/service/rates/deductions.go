package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/shopspring/decimal"
)

// pagibigCeiling is the fixed statutory cap on the employee Pag-IBIG
// contribution, applied regardless of rate or bracket.
var pagibigCeiling = decimal.NewFromInt(100)

var twelve = decimal.NewFromInt(12)

// Deductions is the itemized statutory result for one payroll period.
type Deductions struct {
	Tax             decimal.Decimal
	Philhealth      decimal.Decimal
	SSS             decimal.Decimal
	Pagibig         decimal.Decimal
	TotalDeductions decimal.Decimal
	TaxableIncome   decimal.Decimal
}

// Calculator computes the four government deductions from the organization's
// rate tables. Every missing bracket aborts the computation with a typed
// error; amounts are never silently defaulted to zero.
type Calculator struct {
	rateRepo rate.RateRepository
}

func NewCalculator(rateRepo rate.RateRepository) *Calculator {
	return &Calculator{rateRepo: rateRepo}
}

func (c *Calculator) resolve(ctx context.Context, organizationID string, scheme rate.Scheme, salary decimal.Decimal, date time.Time) (rate.Row, error) {
	rows, err := c.rateRepo.ListEffective(ctx, organizationID, scheme, date)
	if err != nil {
		return rate.Row{}, fmt.Errorf("failed to load %s rate table: %w", scheme, err)
	}
	return Resolve(rows, organizationID, scheme, salary, date)
}

// CalculateAll computes withholding tax, Philhealth, SSS, and Pag-IBIG for
// grossSalary on date. monthlyRateOverride carries the monthly base salary
// when the period is a partial month; tax is computed on the override and
// scaled by grossSalary/override to prorate the partial period.
func (c *Calculator) CalculateAll(ctx context.Context, organizationID string, grossSalary decimal.Decimal, date time.Time, monthlyRateOverride *decimal.Decimal) (Deductions, error) {
	philhealth, err := c.calculatePhilhealth(ctx, organizationID, grossSalary, date)
	if err != nil {
		return Deductions{}, err
	}

	sss, err := c.calculateSSS(ctx, organizationID, grossSalary, date)
	if err != nil {
		return Deductions{}, err
	}

	pagibig, err := c.calculatePagibig(ctx, organizationID, grossSalary, date)
	if err != nil {
		return Deductions{}, err
	}

	taxableIncome := grossSalary.Sub(philhealth).Sub(sss).Sub(pagibig)

	tax, err := c.calculateTax(ctx, organizationID, grossSalary, taxableIncome, date, monthlyRateOverride)
	if err != nil {
		return Deductions{}, err
	}

	return Deductions{
		Tax:             tax,
		Philhealth:      philhealth,
		SSS:             sss,
		Pagibig:         pagibig,
		TotalDeductions: tax.Add(philhealth).Add(sss).Add(pagibig),
		TaxableIncome:   taxableIncome,
	}, nil
}

func (c *Calculator) calculatePhilhealth(ctx context.Context, organizationID string, salary decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	row, err := c.resolve(ctx, organizationID, rate.SchemePhilhealth, salary, date)
	if err != nil {
		return decimal.Zero, err
	}
	return row.EmployeeRate.Mul(salary).Round(2), nil
}

func (c *Calculator) calculateSSS(ctx context.Context, organizationID string, salary decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	row, err := c.resolve(ctx, organizationID, rate.SchemeSSS, salary, date)
	if err != nil {
		return decimal.Zero, err
	}

	// The open-ended top bracket charges contributions only up to its
	// floor: SSS never taxes salary above the top bracket's MinSalary.
	base := salary
	if row.OpenEnded() && salary.GreaterThan(row.MinSalary) {
		base = row.MinSalary
	}
	return base.Mul(row.EmployeeRate).Round(2), nil
}

func (c *Calculator) calculatePagibig(ctx context.Context, organizationID string, salary decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	row, err := c.resolve(ctx, organizationID, rate.SchemePagibig, salary, date)
	if err != nil {
		return decimal.Zero, err
	}

	contribution := row.EmployeeRate.Mul(salary)
	if contribution.GreaterThan(pagibigCeiling) {
		contribution = pagibigCeiling
	}
	return contribution.Round(2), nil
}

func (c *Calculator) calculateTax(ctx context.Context, organizationID string, grossSalary, taxableIncome decimal.Decimal, date time.Time, monthlyRateOverride *decimal.Decimal) (decimal.Decimal, error) {
	monthlyTaxBase := taxableIncome
	if monthlyRateOverride != nil {
		monthlyTaxBase = *monthlyRateOverride
	}

	bracket, err := c.resolve(ctx, organizationID, rate.SchemeTax, monthlyTaxBase, date)
	if err != nil {
		return decimal.Zero, err
	}

	// Minimum-wage bracket: exactly zero, no rounding artifacts.
	if bracket.TaxRate.IsZero() {
		return decimal.Zero, nil
	}

	annualIncome := monthlyTaxBase.Mul(twelve)
	excess := annualIncome.Sub(bracket.MinSalary.Mul(twelve))
	if excess.IsNegative() {
		excess = decimal.Zero
	}
	annualTax := bracket.BaseTax.Mul(twelve).Add(excess.Mul(bracket.TaxRate))
	monthlyTax := annualTax.Div(twelve)

	// Prorate a partial period by the share of the monthly rate earned.
	if monthlyRateOverride != nil && !monthlyRateOverride.IsZero() {
		monthlyTax = monthlyTax.Mul(grossSalary).Div(*monthlyRateOverride)
	}

	return monthlyTax.Round(2), nil
}

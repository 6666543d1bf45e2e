package rate

import (
	"slices"

	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRateRequest struct {
	Scheme        string           `json:"scheme"`
	MinSalary     decimal.Decimal  `json:"min_salary"`
	MaxSalary     *decimal.Decimal `json:"max_salary"`
	EffectiveFrom string           `json:"effective_from"`
	EffectiveTo   *string          `json:"effective_to"`

	BaseTax decimal.Decimal `json:"base_tax"`
	TaxRate decimal.Decimal `json:"tax_rate"`

	EmployeeRate decimal.Decimal `json:"employee_rate"`
	EmployerRate decimal.Decimal `json:"employer_rate"`
	ECRate       decimal.Decimal `json:"ec_rate"`
}

func (r CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors
	if !slices.Contains(SchemeValues, r.Scheme) {
		errs = append(errs, validator.ValidationError{Field: "scheme", Message: "must be one of tax, philhealth, sss, pagibig"})
	}
	if r.MinSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_salary", Message: "must not be negative"})
	}
	if r.MaxSalary != nil && r.MaxSalary.LessThan(r.MinSalary) {
		errs = append(errs, validator.ValidationError{Field: "max_salary", Message: "must not be below min_salary"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EffectiveTo != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRow builds the entity; Validate must have passed.
func (r CreateRateRequest) ToRow(organizationID string) Row {
	from, _ := validator.IsValidDate(r.EffectiveFrom)
	row := Row{
		OrganizationID: organizationID,
		Scheme:         Scheme(r.Scheme),
		MinSalary:      r.MinSalary,
		MaxSalary:      r.MaxSalary,
		EffectiveFrom:  from,
		BaseTax:        r.BaseTax,
		TaxRate:        r.TaxRate,
		EmployeeRate:   r.EmployeeRate,
		EmployerRate:   r.EmployerRate,
		ECRate:         r.ECRate,
	}
	if r.EffectiveTo != nil {
		to, _ := validator.IsValidDate(*r.EffectiveTo)
		row.EffectiveTo = &to
	}
	return row
}

type RateResponse struct {
	ID            string           `json:"id"`
	Scheme        string           `json:"scheme"`
	MinSalary     decimal.Decimal  `json:"min_salary"`
	MaxSalary     *decimal.Decimal `json:"max_salary,omitempty"`
	EffectiveFrom string           `json:"effective_from"`
	EffectiveTo   *string          `json:"effective_to,omitempty"`
	BaseTax       decimal.Decimal  `json:"base_tax"`
	TaxRate       decimal.Decimal  `json:"tax_rate"`
	EmployeeRate  decimal.Decimal  `json:"employee_rate"`
	EmployerRate  decimal.Decimal  `json:"employer_rate"`
	ECRate        decimal.Decimal  `json:"ec_rate"`
}

func ToResponse(row Row) RateResponse {
	resp := RateResponse{
		ID:            row.ID,
		Scheme:        string(row.Scheme),
		MinSalary:     row.MinSalary,
		MaxSalary:     row.MaxSalary,
		EffectiveFrom: row.EffectiveFrom.Format("2006-01-02"),
		BaseTax:       row.BaseTax,
		TaxRate:       row.TaxRate,
		EmployeeRate:  row.EmployeeRate,
		EmployerRate:  row.EmployerRate,
		ECRate:        row.ECRate,
	}
	if row.EffectiveTo != nil {
		to := row.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}

package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusResigned EmploymentStatus = "resigned"
)

type Employee struct {
	ID             string
	OrganizationID string
	EmployeeCode   string
	FullName       string
	HireDate       time.Time
	Status         EmploymentStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Compensation is an effective-dated monthly base salary. The latest row
// with EffectiveDate <= the payroll run date is the salary basis.
type Compensation struct {
	ID            string
	EmployeeID    string
	BaseSalary    decimal.Decimal
	EffectiveDate time.Time
	CreatedAt     time.Time
}

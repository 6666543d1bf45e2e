package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, organization_id, employee_code, full_name, hire_date, status,
			   created_at, updated_at
		FROM employees
		WHERE id = $1 AND organization_id = $2
	`
	var e employee.Employee
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&e.ID, &e.OrganizationID, &e.EmployeeCode, &e.FullName, &e.HireDate, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// GetLatestCompensation implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetLatestCompensation(ctx context.Context, employeeID string, asOf time.Time) (employee.Compensation, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, base_salary, effective_date, created_at
		FROM compensations
		WHERE employee_id = $1 AND effective_date <= $2
		ORDER BY effective_date DESC
		LIMIT 1
	`
	var c employee.Compensation
	err := q.QueryRow(ctx, query, employeeID, asOf).Scan(
		&c.ID, &c.EmployeeID, &c.BaseSalary, &c.EffectiveDate, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Compensation{}, employee.ErrCompensationNotFound
		}
		return employee.Compensation{}, err
	}
	return c, nil
}

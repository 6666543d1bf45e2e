package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rateRepositoryImpl struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) rate.RateRepository {
	return &rateRepositoryImpl{db: db}
}

const rateColumns = `id, organization_id, scheme, min_salary, max_salary,
		   effective_from, effective_to,
		   base_tax, tax_rate, employee_rate, employer_rate, ec_rate,
		   created_at, updated_at`

// Create implements rate.RateRepository.
func (r *rateRepositoryImpl) Create(ctx context.Context, row rate.Row) (rate.Row, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO statutory_rates (
			id, organization_id, scheme, min_salary, max_salary,
			effective_from, effective_to,
			base_tax, tax_rate, employee_rate, employer_rate, ec_rate,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		row.ID, row.OrganizationID, row.Scheme, row.MinSalary, row.MaxSalary,
		row.EffectiveFrom, row.EffectiveTo,
		row.BaseTax, row.TaxRate, row.EmployeeRate, row.EmployerRate, row.ECRate,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return rate.Row{}, fmt.Errorf("failed to create rate: %w", err)
	}
	return row, nil
}

// Delete implements rate.RateRepository.
func (r *rateRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM statutory_rates
		WHERE id = $1 AND organization_id = $2
	`
	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("rate with id %s not found", id)
	}
	return nil
}

// ListEffective implements rate.RateRepository.
func (r *rateRepositoryImpl) ListEffective(ctx context.Context, organizationID string, scheme rate.Scheme, date time.Time) ([]rate.Row, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + rateColumns + `
		FROM statutory_rates
		WHERE organization_id = $1
		  AND scheme = $2
		  AND effective_from <= $3
		  AND (effective_to IS NULL OR effective_to >= $3)
		ORDER BY min_salary
	`
	rows, err := q.Query(ctx, query, organizationID, scheme, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRates(rows)
}

// ListByScheme implements rate.RateRepository.
func (r *rateRepositoryImpl) ListByScheme(ctx context.Context, organizationID string, scheme rate.Scheme) ([]rate.Row, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + rateColumns + `
		FROM statutory_rates
		WHERE organization_id = $1 AND scheme = $2
		ORDER BY effective_from, min_salary
	`
	rows, err := q.Query(ctx, query, organizationID, scheme)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRates(rows)
}

func scanRates(rows pgx.Rows) ([]rate.Row, error) {
	var result []rate.Row
	for rows.Next() {
		var row rate.Row
		err := rows.Scan(
			&row.ID, &row.OrganizationID, &row.Scheme, &row.MinSalary, &row.MaxSalary,
			&row.EffectiveFrom, &row.EffectiveTo,
			&row.BaseTax, &row.TaxRate, &row.EmployeeRate, &row.EmployerRate, &row.ECRate,
			&row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

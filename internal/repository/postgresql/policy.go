package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/policy"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type latePolicyRepositoryImpl struct {
	db *database.DB
}

func NewLateDeductionPolicyRepository(db *database.DB) policy.LateDeductionPolicyRepository {
	return &latePolicyRepositoryImpl{db: db}
}

const latePolicyColumns = `id, organization_id, method, amount, percentage,
		   hourly_multiplier, min_late_minutes, max_deduction_per_day,
		   effective_from, effective_to, created_at, updated_at`

// Create implements policy.LateDeductionPolicyRepository.
func (r *latePolicyRepositoryImpl) Create(ctx context.Context, p policy.LateDeductionPolicy) (policy.LateDeductionPolicy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO late_deduction_policies (
			id, organization_id, method, amount, percentage,
			hourly_multiplier, min_late_minutes, max_deduction_per_day,
			effective_from, effective_to, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		p.ID, p.OrganizationID, p.Method, p.Amount, p.Percentage,
		p.HourlyMultiplier, p.MinLateMinutes, p.MaxDeductionPerDay,
		p.EffectiveFrom, p.EffectiveTo,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return policy.LateDeductionPolicy{}, fmt.Errorf("failed to create late policy: %w", err)
	}
	return p, nil
}

// Delete implements policy.LateDeductionPolicyRepository.
func (r *latePolicyRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM late_deduction_policies
		WHERE id = $1 AND organization_id = $2
	`
	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("late policy with id %s not found", id)
	}
	return nil
}

// GetEffective implements policy.LateDeductionPolicyRepository. The most
// recently effective policy wins when windows overlap.
func (r *latePolicyRepositoryImpl) GetEffective(ctx context.Context, organizationID string, date time.Time) (policy.LateDeductionPolicy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + latePolicyColumns + `
		FROM late_deduction_policies
		WHERE organization_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to >= $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`
	var p policy.LateDeductionPolicy
	err := q.QueryRow(ctx, query, organizationID, date).Scan(
		&p.ID, &p.OrganizationID, &p.Method, &p.Amount, &p.Percentage,
		&p.HourlyMultiplier, &p.MinLateMinutes, &p.MaxDeductionPerDay,
		&p.EffectiveFrom, &p.EffectiveTo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.LateDeductionPolicy{}, policy.ErrPolicyNotFound
		}
		return policy.LateDeductionPolicy{}, err
	}
	return p, nil
}

// ListByOrganization implements policy.LateDeductionPolicyRepository.
func (r *latePolicyRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]policy.LateDeductionPolicy, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + latePolicyColumns + `
		FROM late_deduction_policies
		WHERE organization_id = $1
		ORDER BY effective_from
	`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []policy.LateDeductionPolicy
	for rows.Next() {
		var p policy.LateDeductionPolicy
		err := rows.Scan(
			&p.ID, &p.OrganizationID, &p.Method, &p.Amount, &p.Percentage,
			&p.HourlyMultiplier, &p.MinLateMinutes, &p.MaxDeductionPerDay,
			&p.EffectiveFrom, &p.EffectiveTo, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

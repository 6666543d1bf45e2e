package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payRuleRepositoryImpl struct {
	db *database.DB
}

func NewPayRuleRepository(db *database.DB) payrule.PayRuleRepository {
	return &payRuleRepositoryImpl{db: db}
}

const payRuleColumns = `id, organization_id, day_type, holiday_type, component,
		   multiplier, effective_from, effective_to, created_at, updated_at`

// Create implements payrule.PayRuleRepository.
func (r *payRuleRepositoryImpl) Create(ctx context.Context, rule payrule.PayRule) (payrule.PayRule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO pay_rules (
			id, organization_id, day_type, holiday_type, component,
			multiplier, effective_from, effective_to, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		rule.ID, rule.OrganizationID, rule.DayType, rule.HolidayType, rule.Component,
		rule.Multiplier, rule.EffectiveFrom, rule.EffectiveTo,
	).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return payrule.PayRule{}, fmt.Errorf("failed to create pay rule: %w", err)
	}
	return rule, nil
}

// Delete implements payrule.PayRuleRepository.
func (r *payRuleRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM pay_rules
		WHERE id = $1 AND organization_id = $2
	`
	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("pay rule with id %s not found", id)
	}
	return nil
}

// ListEffective implements payrule.PayRuleRepository.
func (r *payRuleRepositoryImpl) ListEffective(ctx context.Context, organizationID string, date time.Time) ([]payrule.PayRule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payRuleColumns + `
		FROM pay_rules
		WHERE organization_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to >= $2)
	`
	rows, err := q.Query(ctx, query, organizationID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayRules(rows)
}

// ListByOrganization implements payrule.PayRuleRepository.
func (r *payRuleRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]payrule.PayRule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payRuleColumns + `
		FROM pay_rules
		WHERE organization_id = $1
		ORDER BY effective_from
	`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayRules(rows)
}

func scanPayRules(rows pgx.Rows) ([]payrule.PayRule, error) {
	var result []payrule.PayRule
	for rows.Next() {
		var rule payrule.PayRule
		err := rows.Scan(
			&rule.ID, &rule.OrganizationID, &rule.DayType, &rule.HolidayType, &rule.Component,
			&rule.Multiplier, &rule.EffectiveFrom, &rule.EffectiveTo, &rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, rows.Err()
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO holidays (
			id, organization_id, name, date, type, is_recurring, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		holiday.ID, holiday.OrganizationID, holiday.Name, holiday.Date, holiday.Type, holiday.IsRecurring,
	).Scan(&holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return holiday, nil
}

// Delete implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM holidays
		WHERE id = $1 AND organization_id = $2
	`
	commandTag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("holiday with id %s not found", id)
	}
	return nil
}

// ListInRange implements calendar.HolidayRepository. Recurring holidays are
// always returned; the classifier matches them on month and day.
func (r *holidayRepositoryImpl) ListInRange(ctx context.Context, organizationID string, from, to time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, organization_id, name, date, type, is_recurring, created_at, updated_at
		FROM holidays
		WHERE organization_id = $1
		  AND (is_recurring OR (date >= $2 AND date <= $3))
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		err := rows.Scan(&h.ID, &h.OrganizationID, &h.Name, &h.Date, &h.Type, &h.IsRecurring, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

// ListOverrides implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListOverrides(ctx context.Context, employeeID string, from, to time.Time) ([]calendar.EmployeeHolidayOverride, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, holiday_id, date, type, created_at
		FROM employee_holiday_overrides
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []calendar.EmployeeHolidayOverride
	for rows.Next() {
		var o calendar.EmployeeHolidayOverride
		err := rows.Scan(&o.ID, &o.EmployeeID, &o.HolidayID, &o.Date, &o.Type, &o.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) attendance.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `id, employee_id, organization_id, work_date,
		   clock_in_at, clock_out_at, status, late_minutes, created_at, updated_at`

// Create implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry attendance.TimeEntry) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO time_entries (
			id, employee_id, organization_id, work_date,
			clock_in_at, clock_out_at, status, late_minutes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.OrganizationID, entry.WorkDate,
		entry.ClockInAt, entry.ClockOutAt, entry.Status, entry.LateMinutes,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return attendance.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return entry, nil
}

// Close implements attendance.TimeEntryRepository. Only OPEN entries can be
// closed; closing twice fails with ErrEntryClosed.
func (r *timeEntryRepositoryImpl) Close(ctx context.Context, entry attendance.TimeEntry) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE time_entries
		SET clock_out_at = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`
	commandTag, err := q.Exec(ctx, query, entry.ClockOutAt, attendance.TimeEntryStatusClosed, entry.ID, attendance.TimeEntryStatusOpen)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrEntryClosed
	}
	return nil
}

// GetOpenEntry implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetOpenEntry(ctx context.Context, employeeID string) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND status = $2
		ORDER BY clock_in_at DESC
		LIMIT 1
	`
	var entry attendance.TimeEntry
	err := q.QueryRow(ctx, query, employeeID, attendance.TimeEntryStatusOpen).Scan(
		&entry.ID, &entry.EmployeeID, &entry.OrganizationID, &entry.WorkDate,
		&entry.ClockInAt, &entry.ClockOutAt, &entry.Status, &entry.LateMinutes,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeEntry{}, attendance.ErrTimeEntryNotFound
		}
		return attendance.TimeEntry{}, err
	}
	return entry, nil
}

// HasEntryForDate implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) HasEntryForDate(ctx context.Context, employeeID string, workDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM time_entries
			WHERE employee_id = $1 AND work_date = $2
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, workDate).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListClosedInRange implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListClosedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1
		  AND status = $2
		  AND work_date >= $3 AND work_date <= $4
		ORDER BY work_date
	`
	rows, err := q.Query(ctx, query, employeeID, attendance.TimeEntryStatusClosed, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []attendance.TimeEntry
	for rows.Next() {
		var entry attendance.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.OrganizationID, &entry.WorkDate,
			&entry.ClockInAt, &entry.ClockOutAt, &entry.Status, &entry.LateMinutes,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

// ListBreaks implements attendance.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListBreaks(ctx context.Context, timeEntryID string) ([]attendance.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, time_entry_id, start_at, end_at, created_at
		FROM break_records
		WHERE time_entry_id = $1
		ORDER BY start_at
	`
	rows, err := q.Query(ctx, query, timeEntryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []attendance.BreakRecord
	for rows.Next() {
		var b attendance.BreakRecord
		if err := rows.Scan(&b.ID, &b.TimeEntryID, &b.StartAt, &b.EndAt, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

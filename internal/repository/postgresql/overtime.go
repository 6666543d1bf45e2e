package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) attendance.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

// GetApprovedMinutes implements attendance.OvertimeRepository. No approved
// request means zero overtime, not an error.
func (r *overtimeRepositoryImpl) GetApprovedMinutes(ctx context.Context, employeeID string, workDate time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT approved_minutes
		FROM overtime_requests
		WHERE employee_id = $1 AND work_date = $2 AND status = $3
	`
	var minutes int
	err := q.QueryRow(ctx, query, employeeID, workDate, attendance.OvertimeStatusApproved).Scan(&minutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return minutes, nil
}

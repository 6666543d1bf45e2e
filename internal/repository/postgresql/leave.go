package postgresql

import (
	"context"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// ListApprovedInRange implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, start_date, end_date, reason, status,
			   approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = $4
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to, leave.LeaveStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status,
			&l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

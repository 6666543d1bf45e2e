package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// GetByEmployeeID implements schedule.WorkScheduleRepository. Work and rest
// days are stored as smallint arrays of Go weekday numbers (Sunday = 0).
func (r *workScheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, organization_id, start_minute, end_minute,
			   grace_period_minutes, work_days, rest_days, allow_late_deduction,
			   created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1
	`
	var (
		s        schedule.WorkSchedule
		workDays []int32
		restDays []int32
	)
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.OrganizationID, &s.StartMinute, &s.EndMinute,
		&s.GracePeriodMinutes, &workDays, &restDays, &s.AllowLateDeduction,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, err
	}

	s.WorkDays = toWeekdays(workDays)
	s.RestDays = toWeekdays(restDays)
	return s, nil
}

func toWeekdays(days []int32) []time.Weekday {
	result := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		result = append(result, time.Weekday(d))
	}
	return result
}

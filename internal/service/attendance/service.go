package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	timeEntryRepo attendance.TimeEntryRepository
	scheduleRepo  schedule.WorkScheduleRepository
	holidayRepo   calendar.HolidayRepository

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewAttendanceService(
	timeEntryRepo attendance.TimeEntryRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	holidayRepo calendar.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		timeEntryRepo: timeEntryRepo,
		scheduleRepo:  scheduleRepo,
		holidayRepo:   holidayRepo,
		now:           time.Now,
	}
}

func getOrganizationFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", fmt.Errorf("organization_id claim is missing or invalid")
	}
	return organizationID, nil
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	now := s.now()
	workDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	exists, err := s.timeEntryRepo.HasEntryForDate(ctx, req.EmployeeID, workDate)
	if err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if exists {
		return attendance.TimeEntryResponse{}, attendance.ErrAlreadyClockedIn
	}

	entry := attendance.TimeEntry{
		ID:             uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		OrganizationID: organizationID,
		WorkDate:       workDate,
		ClockInAt:      now,
		Status:         attendance.TimeEntryStatusOpen,
	}

	if late := s.lateMinutesAtClockIn(ctx, organizationID, req.EmployeeID, workDate, now); late > 0 {
		entry.LateMinutes = &late
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return toTimeEntryResponse(created), nil
}

// lateMinutesAtClockIn records lateness against the schedule's grace period.
// Lateness is not assessed on holidays or rest days; a failed holiday lookup
// is treated as a non-holiday so clock-in never blocks on calendar data.
func (s *AttendanceServiceImpl) lateMinutesAtClockIn(ctx context.Context, organizationID, employeeID string, workDate, clockInAt time.Time) int {
	sched, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return 0
	}
	if sched.IsRestDay(workDate) {
		return 0
	}

	holidays, err := s.holidayRepo.ListInRange(ctx, organizationID, workDate, workDate)
	if err == nil {
		for _, h := range holidays {
			if h.Matches(workDate) {
				return 0
			}
		}
	}

	scheduledStart := sched.ScheduledStart(workDate)
	graceLimit := scheduledStart.Add(time.Duration(sched.GracePeriodMinutes) * time.Minute)
	if !clockInAt.After(graceLimit) {
		return 0
	}
	return int(clockInAt.Sub(scheduledStart).Minutes())
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	if _, err := getOrganizationFromContext(ctx); err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetOpenEntry(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrTimeEntryNotFound) {
			return attendance.TimeEntryResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to get open entry: %w", err)
	}

	now := s.now()
	entry.ClockOutAt = &now
	entry.Status = attendance.TimeEntryStatusClosed

	if err := s.timeEntryRepo.Close(ctx, entry); err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to close time entry: %w", err)
	}
	return toTimeEntryResponse(entry), nil
}

func toTimeEntryResponse(e attendance.TimeEntry) attendance.TimeEntryResponse {
	resp := attendance.TimeEntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		WorkDate:    e.WorkDate.Format("2006-01-02"),
		ClockInAt:   e.ClockInAt.Format(time.RFC3339),
		Status:      string(e.Status),
		LateMinutes: e.LateMinutes,
	}
	if e.ClockOutAt != nil {
		out := e.ClockOutAt.Format(time.RFC3339)
		resp.ClockOutAt = &out
	}
	return resp
}

package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOrgID      = "8a0e3c92-3f6e-4e1d-9c54-2f6f3d9f1a01"
	testEmployeeID = "4d2b1a77-9c0e-4b6a-8f21-7e5d3c2b1a90"
)

func authContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"organization_id": testOrgID,
		"user_id":         "1f9d2e4b-6a7c-4d3e-9b1a-0c8e7f6d5a43",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeTimeEntryRepo struct {
	hasEntry  bool
	openEntry *attendance.TimeEntry

	created *attendance.TimeEntry
	closed  *attendance.TimeEntry
}

func (f *fakeTimeEntryRepo) Create(ctx context.Context, entry attendance.TimeEntry) (attendance.TimeEntry, error) {
	f.created = &entry
	return entry, nil
}

func (f *fakeTimeEntryRepo) Close(ctx context.Context, entry attendance.TimeEntry) error {
	f.closed = &entry
	return nil
}

func (f *fakeTimeEntryRepo) GetOpenEntry(ctx context.Context, employeeID string) (attendance.TimeEntry, error) {
	if f.openEntry == nil {
		return attendance.TimeEntry{}, attendance.ErrTimeEntryNotFound
	}
	return *f.openEntry, nil
}

func (f *fakeTimeEntryRepo) HasEntryForDate(ctx context.Context, employeeID string, workDate time.Time) (bool, error) {
	return f.hasEntry, nil
}

func (f *fakeTimeEntryRepo) ListClosedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.TimeEntry, error) {
	return nil, nil
}

func (f *fakeTimeEntryRepo) ListBreaks(ctx context.Context, timeEntryID string) ([]attendance.BreakRecord, error) {
	return nil, nil
}

type fakeScheduleRepo struct {
	sched *schedule.WorkSchedule
}

func (f *fakeScheduleRepo) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	if f.sched == nil {
		return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
	}
	return *f.sched, nil
}

type fakeHolidayRepo struct {
	holidays []calendar.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	return holiday, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

func (f *fakeHolidayRepo) ListInRange(ctx context.Context, organizationID string, from, to time.Time) ([]calendar.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) ListOverrides(ctx context.Context, employeeID string, from, to time.Time) ([]calendar.EmployeeHolidayOverride, error) {
	return nil, nil
}

func nineToFive(graceMinutes int) *schedule.WorkSchedule {
	return &schedule.WorkSchedule{
		ID:                 "sched-1",
		EmployeeID:         testEmployeeID,
		OrganizationID:     testOrgID,
		StartMinute:        9 * 60,
		EndMinute:          17 * 60,
		GracePeriodMinutes: graceMinutes,
		WorkDays:           []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		RestDays:           []time.Weekday{time.Saturday, time.Sunday},
		AllowLateDeduction: true,
	}
}

func newService(entries *fakeTimeEntryRepo, schedRepo *fakeScheduleRepo, holidays *fakeHolidayRepo, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		timeEntryRepo: entries,
		scheduleRepo:  schedRepo,
		holidayRepo:   holidays,
		now:           func() time.Time { return now },
	}
}

func TestClockInCreatesOpenEntry(t *testing.T) {
	entries := &fakeTimeEntryRepo{}
	now := time.Date(2025, 6, 11, 9, 5, 0, 0, time.UTC)
	svc := newService(entries, &fakeScheduleRepo{}, &fakeHolidayRepo{}, now)

	resp, err := svc.ClockIn(authContext(t), attendance.ClockInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-11", resp.WorkDate)
	assert.Equal(t, string(attendance.TimeEntryStatusOpen), resp.Status)
	assert.Nil(t, resp.ClockOutAt)
	assert.Nil(t, resp.LateMinutes)

	require.NotNil(t, entries.created)
	assert.Equal(t, testOrgID, entries.created.OrganizationID)
	assert.True(t, entries.created.ClockInAt.Equal(now))
}

func TestClockInRejectsSecondEntrySameDay(t *testing.T) {
	entries := &fakeTimeEntryRepo{hasEntry: true}
	now := time.Date(2025, 6, 11, 13, 0, 0, 0, time.UTC)
	svc := newService(entries, &fakeScheduleRepo{}, &fakeHolidayRepo{}, now)

	_, err := svc.ClockIn(authContext(t), attendance.ClockInRequest{EmployeeID: testEmployeeID})
	require.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	assert.Nil(t, entries.created)
}

func TestClockInRecordsLatenessBeyondGrace(t *testing.T) {
	entries := &fakeTimeEntryRepo{}
	// 09:30 against a 09:00 start with a 15-minute grace: 30 minutes late,
	// measured from the scheduled start.
	now := time.Date(2025, 6, 11, 9, 30, 0, 0, time.UTC)
	svc := newService(entries, &fakeScheduleRepo{sched: nineToFive(15)}, &fakeHolidayRepo{}, now)

	resp, err := svc.ClockIn(authContext(t), attendance.ClockInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 30, *resp.LateMinutes)
}

func TestClockInWithinGraceIsNotLate(t *testing.T) {
	entries := &fakeTimeEntryRepo{}
	now := time.Date(2025, 6, 11, 9, 10, 0, 0, time.UTC)
	svc := newService(entries, &fakeScheduleRepo{sched: nineToFive(15)}, &fakeHolidayRepo{}, now)

	resp, err := svc.ClockIn(authContext(t), attendance.ClockInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	assert.Nil(t, resp.LateMinutes)
}

func TestClockInOnRestDayNotAssessedLate(t *testing.T) {
	entries := &fakeTimeEntryRepo{}
	// 2025-06-14 is a Saturday.
	now := time.Date(2025, 6, 14, 11, 0, 0, 0, time.UTC)
	svc := newService(entries, &fakeScheduleRepo{sched: nineToFive(15)}, &fakeHolidayRepo{}, now)

	resp, err := svc.ClockIn(authContext(t), attendance.ClockInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	assert.Nil(t, resp.LateMinutes)
}

func TestClockInOnHolidayNotAssessedLate(t *testing.T) {
	entries := &fakeTimeEntryRepo{}
	now := time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC)
	holidays := &fakeHolidayRepo{holidays: []calendar.Holiday{
		{Name: "Independence Day", Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), Type: calendar.HolidayTypeRegular},
	}}
	svc := newService(entries, &fakeScheduleRepo{sched: nineToFive(15)}, holidays, now)

	resp, err := svc.ClockIn(authContext(t), attendance.ClockInRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	assert.Nil(t, resp.LateMinutes)
}

func TestClockInValidatesEmployeeID(t *testing.T) {
	svc := newService(&fakeTimeEntryRepo{}, &fakeScheduleRepo{}, &fakeHolidayRepo{}, time.Now())

	_, err := svc.ClockIn(authContext(t), attendance.ClockInRequest{EmployeeID: "not-a-uuid"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestClockOutClosesOpenEntry(t *testing.T) {
	clockIn := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	open := attendance.TimeEntry{
		ID:             "entry-1",
		EmployeeID:     testEmployeeID,
		OrganizationID: testOrgID,
		WorkDate:       time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		ClockInAt:      clockIn,
		Status:         attendance.TimeEntryStatusOpen,
	}
	entries := &fakeTimeEntryRepo{openEntry: &open}
	now := clockIn.Add(8 * time.Hour)
	svc := newService(entries, &fakeScheduleRepo{}, &fakeHolidayRepo{}, now)

	resp, err := svc.ClockOut(authContext(t), attendance.ClockOutRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.TimeEntryStatusClosed), resp.Status)
	require.NotNil(t, resp.ClockOutAt)

	require.NotNil(t, entries.closed)
	assert.Equal(t, attendance.TimeEntryStatusClosed, entries.closed.Status)
	require.NotNil(t, entries.closed.ClockOutAt)
	assert.True(t, entries.closed.ClockOutAt.Equal(now))
}

func TestClockOutWithoutOpenEntry(t *testing.T) {
	svc := newService(&fakeTimeEntryRepo{}, &fakeScheduleRepo{}, &fakeHolidayRepo{}, time.Now())

	_, err := svc.ClockOut(authContext(t), attendance.ClockOutRequest{EmployeeID: testEmployeeID})
	require.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

package timesheet

import (
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	domainrule "github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrgID = "8a0e3c92-3f6e-4e1d-9c54-2f6f3d9f1a01"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func closedEntry(workDate time.Time, inHour, inMin, durationMinutes int) attendance.TimeEntry {
	clockIn := time.Date(workDate.Year(), workDate.Month(), workDate.Day(), inHour, inMin, 0, 0, time.UTC)
	clockOut := clockIn.Add(time.Duration(durationMinutes) * time.Minute)
	return attendance.TimeEntry{
		ID:             "entry-1",
		EmployeeID:     "emp-1",
		OrganizationID: testOrgID,
		WorkDate:       workDate,
		ClockInAt:      clockIn,
		ClockOutAt:     &clockOut,
		Status:         attendance.TimeEntryStatusClosed,
	}
}

func standardRules() []domainrule.PayRule {
	from := date(2025, 1, 1)
	mk := func(dayType domainrule.DayType, component domainrule.Component, multiplier string) domainrule.PayRule {
		return domainrule.PayRule{
			OrganizationID: testOrgID,
			DayType:        dayType,
			Component:      component,
			Multiplier:     decimal.RequireFromString(multiplier),
			EffectiveFrom:  from,
		}
	}
	return []domainrule.PayRule{
		mk(domainrule.DayTypeRegular, domainrule.ComponentRegular, "1.0"),
		mk(domainrule.DayTypeRegular, domainrule.ComponentOvertime, "1.25"),
		mk(domainrule.DayTypeRegular, domainrule.ComponentNightDiff, "0.10"),
		mk(domainrule.DayTypeHoliday, domainrule.ComponentRegular, "2.0"),
		mk(domainrule.DayTypeHoliday, domainrule.ComponentOvertime, "2.6"),
		mk(domainrule.DayTypeHoliday, domainrule.ComponentNightDiff, "0.20"),
	}
}

func TestComputeDayStandardShift(t *testing.T) {
	// 09:00 to 17:00 with no break ledger: 480 clocked minutes minus the
	// flat 60-minute break.
	entry := closedEntry(date(2025, 6, 11), 9, 0, 480)

	day, err := ComputeDay(entry, nil, 0, nil, nil, nil, standardRules())
	require.NoError(t, err)

	assert.Equal(t, 420, day.RegularMinutes)
	assert.Equal(t, 0, day.OvertimeMinutes)
	assert.Equal(t, 0, day.NightDiffMinutes)
	assert.Equal(t, "420", day.RegularPay.String())
	assert.Equal(t, domainrule.DayTypeRegular, day.DayType)
}

func TestComputeDayShortShiftNoBreakDeduction(t *testing.T) {
	// Under six hours, the flat break does not apply.
	entry := closedEntry(date(2025, 6, 11), 9, 0, 300)

	day, err := ComputeDay(entry, nil, 0, nil, nil, nil, standardRules())
	require.NoError(t, err)
	assert.Equal(t, 300, day.RegularMinutes)
}

func TestComputeDayBreakLedgerPreferred(t *testing.T) {
	entry := closedEntry(date(2025, 6, 11), 9, 0, 480)
	breakEnd := entry.ClockInAt.Add(4*time.Hour + 30*time.Minute)
	breaks := []attendance.BreakRecord{
		{TimeEntryID: entry.ID, StartAt: entry.ClockInAt.Add(4 * time.Hour), EndAt: &breakEnd},
	}

	day, err := ComputeDay(entry, breaks, 0, nil, nil, nil, standardRules())
	require.NoError(t, err)
	// 30 minutes of recorded break replace the flat 60.
	assert.Equal(t, 450, day.RegularMinutes)
}

func TestComputeDayOvertimeRequiresApproval(t *testing.T) {
	// 08:00 to 20:00 is 720 minutes clocked, 660 worked.
	entry := closedEntry(date(2025, 6, 11), 8, 0, 720)

	day, err := ComputeDay(entry, nil, 0, nil, nil, nil, standardRules())
	require.NoError(t, err)
	assert.Equal(t, 480, day.RegularMinutes)
	assert.Equal(t, 0, day.OvertimeMinutes)

	day, err = ComputeDay(entry, nil, 120, nil, nil, nil, standardRules())
	require.NoError(t, err)
	assert.Equal(t, 480, day.RegularMinutes)
	// 180 minutes beyond the cap, but only 120 approved.
	assert.Equal(t, 120, day.OvertimeMinutes)
	assert.Equal(t, "150", day.OvertimePay.String())
}

func TestComputeDayNightDifferential(t *testing.T) {
	// 22:00 to 02:00 sits entirely inside the night window.
	entry := closedEntry(date(2025, 6, 11), 22, 0, 240)

	day, err := ComputeDay(entry, nil, 0, nil, nil, nil, standardRules())
	require.NoError(t, err)
	assert.Equal(t, 240, day.RegularMinutes)
	assert.Equal(t, 240, day.NightDiffMinutes)
	assert.Equal(t, "24", day.NightDiffPay.String())
}

func TestComputeDayDayShiftHasNoNightDiff(t *testing.T) {
	entry := closedEntry(date(2025, 6, 11), 9, 0, 480)

	day, err := ComputeDay(entry, nil, 0, nil, nil, nil, standardRules())
	require.NoError(t, err)
	assert.Equal(t, 0, day.NightDiffMinutes)
}

func TestComputeDayHolidayMultiplier(t *testing.T) {
	workDate := date(2025, 6, 12)
	entry := closedEntry(workDate, 9, 0, 480)
	holidays := []calendar.Holiday{
		{Name: "Independence Day", Date: workDate, Type: calendar.HolidayTypeRegular},
	}

	day, err := ComputeDay(entry, nil, 0, holidays, nil, nil, standardRules())
	require.NoError(t, err)
	assert.Equal(t, domainrule.DayTypeHoliday, day.DayType)
	assert.Equal(t, 420, day.RegularMinutes)
	// 420 minutes at double pay.
	assert.Equal(t, "840", day.RegularPay.String())
}

func TestComputeDayRestDayWithoutRuleFails(t *testing.T) {
	sched := &schedule.WorkSchedule{RestDays: []time.Weekday{time.Saturday}}
	// 2025-06-14 is a Saturday and no REST rules are configured.
	entry := closedEntry(date(2025, 6, 14), 9, 0, 480)

	_, err := ComputeDay(entry, nil, 0, nil, nil, sched, standardRules())
	var missing *domainrule.MissingRuleError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domainrule.DayTypeRest, missing.DayType)
}

func TestComputeDayOpenEntryContributesNothing(t *testing.T) {
	entry := closedEntry(date(2025, 6, 11), 9, 0, 480)
	entry.Status = attendance.TimeEntryStatusOpen
	entry.ClockOutAt = nil

	day, err := ComputeDay(entry, nil, 0, nil, nil, nil, standardRules())
	require.NoError(t, err)
	assert.Equal(t, 0, day.RegularMinutes)
	assert.True(t, day.RegularPay.IsZero())
}

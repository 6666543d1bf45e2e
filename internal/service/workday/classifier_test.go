package workday

import (
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekendSchedule() *schedule.WorkSchedule {
	return &schedule.WorkSchedule{
		RestDays: []time.Weekday{time.Saturday, time.Sunday},
	}
}

func TestClassifyRegularWeekday(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	dayType, holidayType := Classify(date(2025, 6, 11), nil, nil, weekendSchedule())
	assert.Equal(t, payrule.DayTypeRegular, dayType)
	assert.Nil(t, holidayType)
}

func TestClassifyRestDay(t *testing.T) {
	// 2025-06-14 is a Saturday.
	dayType, holidayType := Classify(date(2025, 6, 14), nil, nil, weekendSchedule())
	assert.Equal(t, payrule.DayTypeRest, dayType)
	assert.Nil(t, holidayType)
}

func TestClassifyNilScheduleIsRegular(t *testing.T) {
	dayType, _ := Classify(date(2025, 6, 14), nil, nil, nil)
	assert.Equal(t, payrule.DayTypeRegular, dayType)
}

func TestClassifyHolidayBeatsRestDay(t *testing.T) {
	// 2025-06-14 is both a Saturday and a declared holiday.
	holidays := []calendar.Holiday{
		{Name: "Company Day", Date: date(2025, 6, 14), Type: calendar.HolidayTypeCompany},
	}

	dayType, holidayType := Classify(date(2025, 6, 14), holidays, nil, weekendSchedule())
	assert.Equal(t, payrule.DayTypeHoliday, dayType)
	require.NotNil(t, holidayType)
	assert.Equal(t, calendar.HolidayTypeCompany, *holidayType)
}

func TestClassifyRecurringHolidayIgnoresStoredYear(t *testing.T) {
	holidays := []calendar.Holiday{
		{Name: "Independence Day", Date: date(2020, 6, 12), Type: calendar.HolidayTypeRegular, IsRecurring: true},
	}

	dayType, holidayType := Classify(date(2025, 6, 12), holidays, nil, weekendSchedule())
	assert.Equal(t, payrule.DayTypeHoliday, dayType)
	require.NotNil(t, holidayType)
	assert.Equal(t, calendar.HolidayTypeRegular, *holidayType)
}

func TestClassifyNonRecurringHolidayNeedsExactYear(t *testing.T) {
	holidays := []calendar.Holiday{
		{Name: "One-off", Date: date(2024, 6, 12), Type: calendar.HolidayTypeSpecialNonWorking},
	}

	dayType, _ := Classify(date(2025, 6, 12), holidays, nil, weekendSchedule())
	assert.Equal(t, payrule.DayTypeRegular, dayType)
}

func TestClassifyOverrideWinsOverHoliday(t *testing.T) {
	holidays := []calendar.Holiday{
		{Name: "Regional Holiday", Date: date(2025, 6, 12), Type: calendar.HolidayTypeRegular},
	}
	overrides := []calendar.EmployeeHolidayOverride{
		{Date: date(2025, 6, 12), Type: calendar.HolidayTypeCompany},
	}

	dayType, holidayType := Classify(date(2025, 6, 12), holidays, overrides, weekendSchedule())
	assert.Equal(t, payrule.DayTypeHoliday, dayType)
	require.NotNil(t, holidayType)
	assert.Equal(t, calendar.HolidayTypeCompany, *holidayType)
}

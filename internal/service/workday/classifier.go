package workday

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
)

// Classify resolves the day type for one employee work date.
//
// Precedence: an employee-specific holiday override wins unconditionally,
// then calendar holidays (recurring holidays match on month/day, the stored
// year is ignored), then the schedule's configured rest days, else REGULAR.
func Classify(workDate time.Time, holidays []calendar.Holiday, overrides []calendar.EmployeeHolidayOverride, sched *schedule.WorkSchedule) (payrule.DayType, *calendar.HolidayType) {
	for _, o := range overrides {
		if sameDate(o.Date, workDate) {
			t := o.Type
			return payrule.DayTypeHoliday, &t
		}
	}

	for _, h := range holidays {
		if h.Matches(workDate) {
			t := h.Type
			return payrule.DayTypeHoliday, &t
		}
	}

	if sched != nil && sched.IsRestDay(workDate) {
		return payrule.DayTypeRest, nil
	}

	return payrule.DayTypeRegular, nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

package schedule

import "time"

// WorkSchedule is the employee's expected working pattern. Start/End are
// minutes since midnight; WorkDays and RestDays partition the week.
type WorkSchedule struct {
	ID                 string
	EmployeeID         string
	OrganizationID     string
	StartMinute        int
	EndMinute          int
	GracePeriodMinutes int
	WorkDays           []time.Weekday
	RestDays           []time.Weekday
	AllowLateDeduction bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsRestDay reports whether the weekday of date is a configured rest day.
func (s WorkSchedule) IsRestDay(date time.Time) bool {
	for _, d := range s.RestDays {
		if d == date.Weekday() {
			return true
		}
	}
	return false
}

// ScheduledStart anchors the schedule's start time on the given work date.
func (s WorkSchedule) ScheduledStart(workDate time.Time) time.Time {
	return time.Date(workDate.Year(), workDate.Month(), workDate.Day(),
		s.StartMinute/60, s.StartMinute%60, 0, 0, workDate.Location())
}

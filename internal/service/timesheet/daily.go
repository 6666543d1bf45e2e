package timesheet

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	domainrule "github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/bayanihr/payroll-backend-go/internal/service/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/service/workday"
	"github.com/shopspring/decimal"
)

const (
	// regularCapMinutes caps the regular bucket at 8 hours.
	regularCapMinutes = 480
	// breakThresholdMinutes is the shift length at which the flat unpaid
	// break applies when no break ledger exists.
	breakThresholdMinutes = 360
	unpaidBreakMinutes    = 60

	nightStartHour = 22
	nightEndHour   = 6
)

// DailyPay is the computed result for one time entry. Pay fields are
// multiplier-weighted minute units; the aggregator applies the employee's
// per-minute rate when it builds earning lines.
type DailyPay struct {
	RegularMinutes   int
	RegularPay       decimal.Decimal
	OvertimeMinutes  int
	OvertimePay      decimal.Decimal
	NightDiffMinutes int
	NightDiffPay     decimal.Decimal

	DayType     domainrule.DayType
	HolidayType *calendar.HolidayType
}

// ComputeDay turns one CLOSED time entry into per-bucket minutes and
// multiplier-weighted pay units. Open entries contribute nothing.
func ComputeDay(
	entry attendance.TimeEntry,
	breaks []attendance.BreakRecord,
	approvedOvertimeMinutes int,
	holidays []calendar.Holiday,
	overrides []calendar.EmployeeHolidayOverride,
	sched *schedule.WorkSchedule,
	rules []domainrule.PayRule,
) (DailyPay, error) {
	zero := DailyPay{
		RegularPay:   decimal.Zero,
		OvertimePay:  decimal.Zero,
		NightDiffPay: decimal.Zero,
		DayType:      domainrule.DayTypeRegular,
	}
	if !entry.Closed() {
		return zero, nil
	}

	worked := entry.WorkedMinutes() - unpaidBreak(entry, breaks)
	if worked < 0 {
		worked = 0
	}

	regularMinutes := worked
	if regularMinutes > regularCapMinutes {
		regularMinutes = regularCapMinutes
	}

	overtimeMinutes := worked - regularCapMinutes
	if overtimeMinutes < 0 {
		overtimeMinutes = 0
	}
	if overtimeMinutes > approvedOvertimeMinutes {
		overtimeMinutes = approvedOvertimeMinutes
	}

	nightDiffMinutes := nightDiffOverlap(entry)

	dayType, holidayType := workday.Classify(entry.WorkDate, holidays, overrides, sched)

	regularMult, err := payrule.ResolveMultiplier(rules, entry.OrganizationID, dayType, holidayType, domainrule.ComponentRegular, entry.WorkDate)
	if err != nil {
		return zero, err
	}
	overtimeMult, err := payrule.ResolveMultiplier(rules, entry.OrganizationID, dayType, holidayType, domainrule.ComponentOvertime, entry.WorkDate)
	if err != nil {
		return zero, err
	}
	nightDiffMult, err := payrule.ResolveMultiplier(rules, entry.OrganizationID, dayType, holidayType, domainrule.ComponentNightDiff, entry.WorkDate)
	if err != nil {
		return zero, err
	}

	return DailyPay{
		RegularMinutes:   regularMinutes,
		RegularPay:       decimal.NewFromInt(int64(regularMinutes)).Mul(regularMult),
		OvertimeMinutes:  overtimeMinutes,
		OvertimePay:      decimal.NewFromInt(int64(overtimeMinutes)).Mul(overtimeMult),
		NightDiffMinutes: nightDiffMinutes,
		NightDiffPay:     decimal.NewFromInt(int64(nightDiffMinutes)).Mul(nightDiffMult),
		DayType:          dayType,
		HolidayType:      holidayType,
	}, nil
}

// unpaidBreak prefers the explicit break ledger; the flat 60-minute
// deduction for shifts of 6 hours or more applies only when no break
// records exist for the entry.
func unpaidBreak(entry attendance.TimeEntry, breaks []attendance.BreakRecord) int {
	if len(breaks) > 0 {
		total := 0
		for _, b := range breaks {
			total += b.Minutes()
		}
		return total
	}
	if entry.WorkedMinutes() >= breakThresholdMinutes {
		return unpaidBreakMinutes
	}
	return 0
}

// nightDiffOverlap is the minute overlap between the clocked span and the
// night window [22:00 of the work date, 06:00 next day].
func nightDiffOverlap(entry attendance.TimeEntry) int {
	if !entry.Closed() {
		return 0
	}
	loc := entry.ClockInAt.Location()
	d := entry.WorkDate
	nightStart := time.Date(d.Year(), d.Month(), d.Day(), nightStartHour, 0, 0, 0, loc)
	nightEnd := nightStart.Add(time.Duration(24-nightStartHour+nightEndHour) * time.Hour)

	start := entry.ClockInAt
	if nightStart.After(start) {
		start = nightStart
	}
	end := *entry.ClockOutAt
	if nightEnd.Before(end) {
		end = nightEnd
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}

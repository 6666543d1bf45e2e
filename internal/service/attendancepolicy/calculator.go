package attendancepolicy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/bayanihr/payroll-backend-go/internal/domain/policy"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

const minutesPerHour = 60

var hoursPerDay = decimal.NewFromInt(8)

// LateMetrics summarizes lateness over a period. An entry counts as an
// instance only when its computed deduction is positive.
type LateMetrics struct {
	TotalMinutes   int
	Instances      int
	TotalDeduction decimal.Decimal
}

// Calculator computes policy-governed attendance deductions: absence
// counting and lateness, both configurable per organization rather than
// statutory.
type Calculator struct {
	timeEntryRepo attendance.TimeEntryRepository
	leaveRepo     leave.LeaveRequestRepository
	scheduleRepo  schedule.WorkScheduleRepository
	policyRepo    policy.LateDeductionPolicyRepository
}

func NewCalculator(
	timeEntryRepo attendance.TimeEntryRepository,
	leaveRepo leave.LeaveRequestRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	policyRepo policy.LateDeductionPolicyRepository,
) *Calculator {
	return &Calculator{
		timeEntryRepo: timeEntryRepo,
		leaveRepo:     leaveRepo,
		scheduleRepo:  scheduleRepo,
		policyRepo:    policyRepo,
	}
}

// AbsentDays counts weekdays in [periodStart, periodEnd] with no CLOSED
// time entry and no approved leave covering them. Weekends never count.
func (c *Calculator) AbsentDays(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (int, error) {
	entries, err := c.timeEntryRepo.ListClosedInRange(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	leaves, err := c.leaveRepo.ListApprovedInRange(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved leave: %w", err)
	}

	worked := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Closed() {
			worked[e.WorkDate.Format("2006-01-02")] = true
		}
	}

	absent := 0
	for day := periodStart; !day.After(periodEnd); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if worked[day.Format("2006-01-02")] {
			continue
		}
		if coveredByLeave(leaves, day) {
			continue
		}
		absent++
	}
	return absent, nil
}

func coveredByLeave(leaves []leave.LeaveRequest, day time.Time) bool {
	for _, l := range leaves {
		if l.Covers(day) {
			return true
		}
	}
	return false
}

// LateMetrics evaluates lateness for every CLOSED entry in the period
// against the employee's schedule and the organization's effective late
// policy. A missing policy or a schedule that disallows late deductions
// yields zeros, not an error.
func (c *Calculator) LateMetrics(ctx context.Context, organizationID, employeeID string, periodStart, periodEnd time.Time, dailyRate decimal.Decimal) (LateMetrics, error) {
	zero := LateMetrics{TotalDeduction: decimal.Zero}

	sched, err := c.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return zero, nil
		}
		return zero, fmt.Errorf("failed to get work schedule: %w", err)
	}
	if !sched.AllowLateDeduction {
		return zero, nil
	}

	entries, err := c.timeEntryRepo.ListClosedInRange(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return zero, fmt.Errorf("failed to list time entries: %w", err)
	}

	metrics := zero
	for _, entry := range entries {
		if !entry.Closed() {
			continue
		}

		lateMinutes := lateMinutesFor(entry, sched)
		if lateMinutes <= 0 {
			continue
		}

		p, err := c.policyRepo.GetEffective(ctx, organizationID, entry.WorkDate)
		if err != nil {
			if errors.Is(err, policy.ErrPolicyNotFound) {
				continue
			}
			return zero, fmt.Errorf("failed to get late deduction policy: %w", err)
		}
		metrics.TotalMinutes += lateMinutes

		deduction := computeDeduction(p, lateMinutes, dailyRate)
		if deduction.IsPositive() {
			metrics.Instances++
			metrics.TotalDeduction = metrics.TotalDeduction.Add(deduction)
		}
	}
	return metrics, nil
}

// lateMinutesFor measures lateness from the scheduled start, assessed only
// when clock-in falls beyond the grace period.
func lateMinutesFor(entry attendance.TimeEntry, sched schedule.WorkSchedule) int {
	if entry.LateMinutes != nil {
		return *entry.LateMinutes
	}
	scheduledStart := sched.ScheduledStart(entry.WorkDate)
	graceLimit := scheduledStart.Add(time.Duration(sched.GracePeriodMinutes) * time.Minute)
	if !entry.ClockInAt.After(graceLimit) {
		return 0
	}
	return int(entry.ClockInAt.Sub(scheduledStart).Minutes())
}

func computeDeduction(p policy.LateDeductionPolicy, lateMinutes int, dailyRate decimal.Decimal) decimal.Decimal {
	if lateMinutes < p.MinLateMinutes {
		return decimal.Zero
	}

	var deduction decimal.Decimal
	switch p.Method {
	case policy.MethodFixedAmount:
		deduction = p.Amount
	case policy.MethodPercentage:
		deduction = dailyRate.Mul(p.Percentage)
	case policy.MethodHourlyRate:
		hourlyRate := dailyRate.Div(hoursPerDay)
		lateHours := decimal.NewFromInt(int64(lateMinutes)).Div(decimal.NewFromInt(minutesPerHour))
		deduction = hourlyRate.Mul(lateHours).Mul(p.HourlyMultiplier)
	default:
		return decimal.Zero
	}

	if p.MaxDeductionPerDay != nil && deduction.GreaterThan(*p.MaxDeductionPerDay) {
		deduction = *p.MaxDeductionPerDay
	}
	return deduction.Round(2)
}

package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	domainrule "github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/bayanihr/payroll-backend-go/internal/service/attendancepolicy"
	"github.com/bayanihr/payroll-backend-go/internal/service/rates"
	"github.com/bayanihr/payroll-backend-go/internal/service/timesheet"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const minutesPerWorkDay = 480

type PayrollServiceImpl struct {
	payrollRepo   payroll.PayrollRepository
	employeeRepo  employee.EmployeeRepository
	timeEntryRepo attendance.TimeEntryRepository
	overtimeRepo  attendance.OvertimeRepository
	holidayRepo   calendar.HolidayRepository
	scheduleRepo  schedule.WorkScheduleRepository
	payRuleRepo   domainrule.PayRuleRepository

	deductionsCalc *rates.Calculator
	attendanceCalc *attendancepolicy.Calculator

	workDaysPerMonth int
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	timeEntryRepo attendance.TimeEntryRepository,
	overtimeRepo attendance.OvertimeRepository,
	holidayRepo calendar.HolidayRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	payRuleRepo domainrule.PayRuleRepository,
	deductionsCalc *rates.Calculator,
	attendanceCalc *attendancepolicy.Calculator,
	workDaysPerMonth int,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:      payrollRepo,
		employeeRepo:     employeeRepo,
		timeEntryRepo:    timeEntryRepo,
		overtimeRepo:     overtimeRepo,
		holidayRepo:      holidayRepo,
		scheduleRepo:     scheduleRepo,
		payRuleRepo:      payRuleRepo,
		deductionsCalc:   deductionsCalc,
		attendanceCalc:   attendanceCalc,
		workDaysPerMonth: workDaysPerMonth,
	}
}

// Helper to get organization_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (organizationID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", "", fmt.Errorf("organization_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return organizationID, userID, nil
}

func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	organizationID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	periodStart, periodEnd := req.Period()

	existing, err := s.payrollRepo.GetActiveByEmployeePeriod(ctx, req.EmployeeID, periodStart, periodEnd)
	if err == nil {
		return s.toResponseWithItems(ctx, existing)
	}
	if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to check existing payroll: %w", err)
	}

	p, earnings, deductions, err := s.compute(ctx, organizationID, uuid.NewString(), req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	log := payroll.Log{
		ID:             uuid.NewString(),
		PayrollID:      p.ID,
		Action:         "generate",
		PreviousStatus: payroll.StatusDraft,
		NewStatus:      payroll.StatusComputed,
		UserID:         userID,
	}

	committed, err := s.payrollRepo.CommitComputation(ctx, p, earnings, deductions, log)
	if err != nil {
		// Two concurrent generates race on the partial unique index; the
		// loser returns the winner's payroll.
		if errors.Is(err, payroll.ErrPayrollAlreadyExists) {
			winner, getErr := s.payrollRepo.GetActiveByEmployeePeriod(ctx, req.EmployeeID, periodStart, periodEnd)
			if getErr != nil {
				return payroll.PayrollResponse{}, fmt.Errorf("failed to fetch existing payroll: %w", getErr)
			}
			return s.toResponseWithItems(ctx, winner)
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to commit payroll: %w", err)
	}

	return s.toResponseWithItems(ctx, committed)
}

func (s *PayrollServiceImpl) Recalculate(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	organizationID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	current, err := s.payrollRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if err := payroll.ValidateRecalculate(current.Status); err != nil {
		return payroll.PayrollResponse{}, err
	}

	p, earnings, deductions, err := s.compute(ctx, organizationID, current.ID, current.EmployeeID, current.PeriodStart, current.PeriodEnd)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	p.CreatedAt = current.CreatedAt

	log := payroll.Log{
		ID:             uuid.NewString(),
		PayrollID:      p.ID,
		Action:         "recalculate",
		PreviousStatus: current.Status,
		NewStatus:      payroll.StatusComputed,
		UserID:         userID,
	}

	committed, err := s.payrollRepo.CommitComputation(ctx, p, earnings, deductions, log)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to commit payroll: %w", err)
	}
	return s.toResponseWithItems(ctx, committed)
}

// compute runs the full calculation pipeline for one employee and period and
// returns the unsaved aggregate with its line items.
func (s *PayrollServiceImpl) compute(ctx context.Context, organizationID, payrollID, employeeID string, periodStart, periodEnd time.Time) (payroll.Payroll, []payroll.Earning, []payroll.Deduction, error) {
	if periodEnd.Before(periodStart) {
		return payroll.Payroll{}, nil, nil, payroll.ErrInvalidPeriod
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, organizationID); err != nil {
		return payroll.Payroll{}, nil, nil, err
	}

	comp, err := s.employeeRepo.GetLatestCompensation(ctx, employeeID, periodEnd)
	if err != nil {
		return payroll.Payroll{}, nil, nil, err
	}
	baseSalary := comp.BaseSalary
	workDays := decimal.NewFromInt(int64(s.workDaysPerMonth))
	perMinuteRate := baseSalary.Div(workDays.Mul(decimal.NewFromInt(minutesPerWorkDay)))
	dailyRate := baseSalary.Div(workDays)

	sched, err := s.loadSchedule(ctx, employeeID)
	if err != nil {
		return payroll.Payroll{}, nil, nil, err
	}

	holidays, err := s.holidayRepo.ListInRange(ctx, organizationID, periodStart, periodEnd)
	if err != nil {
		return payroll.Payroll{}, nil, nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	overrides, err := s.holidayRepo.ListOverrides(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.Payroll{}, nil, nil, fmt.Errorf("failed to list holiday overrides: %w", err)
	}
	rules, err := s.payRuleRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return payroll.Payroll{}, nil, nil, fmt.Errorf("failed to list pay rules: %w", err)
	}

	entries, err := s.timeEntryRepo.ListClosedInRange(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.Payroll{}, nil, nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	var (
		regularMinutes, overtimeMinutes, nightDiffMinutes int
		regularUnits                                      = decimal.Zero
		overtimeUnits                                     = decimal.Zero
		nightDiffUnits                                    = decimal.Zero
	)
	for _, entry := range entries {
		breaks, err := s.timeEntryRepo.ListBreaks(ctx, entry.ID)
		if err != nil {
			return payroll.Payroll{}, nil, nil, fmt.Errorf("failed to list breaks: %w", err)
		}
		approvedOT, err := s.overtimeRepo.GetApprovedMinutes(ctx, employeeID, entry.WorkDate)
		if err != nil {
			return payroll.Payroll{}, nil, nil, fmt.Errorf("failed to get approved overtime: %w", err)
		}

		day, err := timesheet.ComputeDay(entry, breaks, approvedOT, holidays, overrides, sched, rules)
		if err != nil {
			return payroll.Payroll{}, nil, nil, err
		}

		regularMinutes += day.RegularMinutes
		overtimeMinutes += day.OvertimeMinutes
		nightDiffMinutes += day.NightDiffMinutes
		regularUnits = regularUnits.Add(day.RegularPay)
		overtimeUnits = overtimeUnits.Add(day.OvertimePay)
		nightDiffUnits = nightDiffUnits.Add(day.NightDiffPay)
	}

	regularPay := regularUnits.Mul(perMinuteRate).Round(2)
	overtimePay := overtimeUnits.Mul(perMinuteRate).Round(2)
	nightDiffPay := nightDiffUnits.Mul(perMinuteRate).Round(2)
	grossPay := regularPay.Add(overtimePay).Add(nightDiffPay)

	// Statutory brackets assume a full calendar month of income; a partial
	// period computes tax on the monthly base and prorates.
	var monthlyRateOverride *decimal.Decimal
	if !isFullCalendarMonth(periodStart, periodEnd) {
		monthlyRateOverride = &baseSalary
	}

	statutory, err := s.deductionsCalc.CalculateAll(ctx, organizationID, grossPay, periodEnd, monthlyRateOverride)
	if err != nil {
		return payroll.Payroll{}, nil, nil, err
	}

	absentDays, err := s.attendanceCalc.AbsentDays(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.Payroll{}, nil, nil, err
	}
	absenceDeduction := dailyRate.Mul(decimal.NewFromInt(int64(absentDays))).Round(2)

	late, err := s.attendanceCalc.LateMetrics(ctx, organizationID, employeeID, periodStart, periodEnd, dailyRate)
	if err != nil {
		return payroll.Payroll{}, nil, nil, err
	}

	totalDeductions := statutory.TotalDeductions.Add(late.TotalDeduction).Add(absenceDeduction)
	netPay := grossPay.Sub(totalDeductions)

	now := time.Now()
	p := payroll.Payroll{
		ID:               payrollID,
		EmployeeID:       employeeID,
		OrganizationID:   organizationID,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		GrossPay:         grossPay,
		TaxableIncome:    statutory.TaxableIncome,
		Tax:              statutory.Tax,
		Philhealth:       statutory.Philhealth,
		SSS:              statutory.SSS,
		Pagibig:          statutory.Pagibig,
		LateDeduction:    late.TotalDeduction,
		AbsenceDeduction: absenceDeduction,
		TotalDeductions:  totalDeductions,
		NetPay:           netPay,
		AbsentDays:       absentDays,
		LateMinutes:      late.TotalMinutes,
		LateInstances:    late.Instances,
		Status:           payroll.StatusComputed,
		ComputedAt:       &now,
	}

	earnings := []payroll.Earning{
		{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.EarningRegular, Minutes: regularMinutes, Amount: regularPay},
	}
	if overtimeMinutes > 0 {
		earnings = append(earnings, payroll.Earning{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.EarningOvertime, Minutes: overtimeMinutes, Amount: overtimePay})
	}
	if nightDiffMinutes > 0 {
		earnings = append(earnings, payroll.Earning{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.EarningNightDiff, Minutes: nightDiffMinutes, Amount: nightDiffPay})
	}

	deductions := []payroll.Deduction{
		{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.DeductionTax, Amount: statutory.Tax},
		{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.DeductionPhilhealth, Amount: statutory.Philhealth},
		{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.DeductionSSS, Amount: statutory.SSS},
		{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.DeductionPagibig, Amount: statutory.Pagibig},
	}
	if late.TotalDeduction.IsPositive() {
		deductions = append(deductions, payroll.Deduction{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.DeductionLate, Amount: late.TotalDeduction})
	}
	if absenceDeduction.IsPositive() {
		deductions = append(deductions, payroll.Deduction{ID: uuid.NewString(), PayrollID: payrollID, Type: payroll.DeductionAbsence, Amount: absenceDeduction})
	}

	return p, earnings, deductions, nil
}

func (s *PayrollServiceImpl) loadSchedule(ctx context.Context, employeeID string) (*schedule.WorkSchedule, error) {
	sched, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return &sched, nil
}

func isFullCalendarMonth(start, end time.Time) bool {
	if start.Day() != 1 {
		return false
	}
	lastDay := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location())
	return end.Year() == start.Year() && end.Month() == start.Month() && end.Day() == lastDay.Day()
}

func (s *PayrollServiceImpl) Approve(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.transition(ctx, id, "approve", nil, payroll.ValidateApprove, func(p *payroll.Payroll, userID string, now time.Time) {
		p.Status = payroll.StatusApproved
		p.ApprovedBy = &userID
		p.ApprovedAt = &now
	})
}

func (s *PayrollServiceImpl) Release(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.transition(ctx, id, "release", nil, payroll.ValidateRelease, func(p *payroll.Payroll, userID string, now time.Time) {
		p.Status = payroll.StatusReleased
		p.ReleasedBy = &userID
		p.ReleasedAt = &now
	})
}

func (s *PayrollServiceImpl) Void(ctx context.Context, req payroll.VoidPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	reason := req.Reason
	return s.transition(ctx, req.ID, "void", &reason, payroll.ValidateVoid, func(p *payroll.Payroll, userID string, now time.Time) {
		p.Status = payroll.StatusVoided
		p.VoidedBy = &userID
		p.VoidedAt = &now
		p.VoidReason = &reason
	})
}

func (s *PayrollServiceImpl) transition(
	ctx context.Context,
	id, action string,
	reason *string,
	validate func(payroll.Status) error,
	apply func(*payroll.Payroll, string, time.Time),
) (payroll.PayrollResponse, error) {
	organizationID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if err := validate(p.Status); err != nil {
		return payroll.PayrollResponse{}, err
	}

	previous := p.Status
	now := time.Now()
	apply(&p, userID, now)

	log := payroll.Log{
		ID:             uuid.NewString(),
		PayrollID:      p.ID,
		Action:         action,
		PreviousStatus: previous,
		NewStatus:      p.Status,
		Reason:         reason,
		UserID:         userID,
	}
	if err := s.payrollRepo.UpdateStatus(ctx, p, log); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to %s payroll: %w", action, err)
	}
	return toResponse(p), nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return s.toResponseWithItems(ctx, p)
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.Filter) (payroll.ListPayrollResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payrolls, total, err := s.payrollRepo.List(ctx, organizationID, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}

	data := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		data = append(data, toResponse(p))
	}
	return payroll.ListPayrollResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) GetLogs(ctx context.Context, id string) ([]payroll.LogResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.payrollRepo.GetByID(ctx, id, organizationID); err != nil {
		return nil, err
	}

	logs, err := s.payrollRepo.ListLogs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll logs: %w", err)
	}

	responses := make([]payroll.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, payroll.LogResponse{
			Action:         l.Action,
			PreviousStatus: string(l.PreviousStatus),
			NewStatus:      string(l.NewStatus),
			Reason:         l.Reason,
			UserID:         l.UserID,
			CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *PayrollServiceImpl) toResponseWithItems(ctx context.Context, p payroll.Payroll) (payroll.PayrollResponse, error) {
	resp := toResponse(p)

	earnings, err := s.payrollRepo.ListEarnings(ctx, p.ID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list earnings: %w", err)
	}
	for _, e := range earnings {
		resp.Earnings = append(resp.Earnings, payroll.EarningResponse{
			Type:    string(e.Type),
			Minutes: e.Minutes,
			Amount:  e.Amount,
		})
	}

	deductions, err := s.payrollRepo.ListDeductions(ctx, p.ID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list deductions: %w", err)
	}
	for _, d := range deductions {
		resp.Deductions = append(resp.Deductions, payroll.DeductionResponse{
			Type:   string(d.Type),
			Amount: d.Amount,
		})
	}
	return resp, nil
}

func toResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		PeriodStart:      p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        p.PeriodEnd.Format("2006-01-02"),
		GrossPay:         p.GrossPay,
		TaxableIncome:    p.TaxableIncome,
		Tax:              p.Tax,
		Philhealth:       p.Philhealth,
		SSS:              p.SSS,
		Pagibig:          p.Pagibig,
		LateDeduction:    p.LateDeduction,
		AbsenceDeduction: p.AbsenceDeduction,
		TotalDeductions:  p.TotalDeductions,
		NetPay:           p.NetPay,
		AbsentDays:       p.AbsentDays,
		LateMinutes:      p.LateMinutes,
		LateInstances:    p.LateInstances,
		Status:           string(p.Status),
	}
}

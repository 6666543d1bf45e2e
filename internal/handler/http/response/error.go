package response

import (
	"errors"
	"net/http"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/policy"
	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Missing configuration is the caller's to fix, not a server fault.
	var missingRate *rate.MissingRateError
	if errors.As(err, &missingRate) {
		UnprocessableEntity(w, missingRate.Error())
		return
	}
	var missingRule *payrule.MissingRuleError
	if errors.As(err, &missingRule) {
		UnprocessableEntity(w, missingRule.Error())
		return
	}
	var overlap *rate.OverlapError
	if errors.As(err, &overlap) {
		Conflict(w, overlap.Error())
		return
	}
	var transition *payroll.InvalidTransitionError
	if errors.As(err, &transition) {
		Conflict(w, transition.Error())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already exists for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this work date")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open time entry to clock out")
	case errors.Is(err, attendance.ErrEntryClosed):
		Conflict(w, "Time entry already closed")
	case errors.Is(err, attendance.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCompensationNotFound):
		UnprocessableEntity(w, "Employee has no compensation record")

	// Configuration errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, rate.ErrRateRowNotFound):
		NotFound(w, "Rate not found")
	case errors.Is(err, payrule.ErrPayRuleNotFound):
		NotFound(w, "Pay rule not found")
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Late deduction policy not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

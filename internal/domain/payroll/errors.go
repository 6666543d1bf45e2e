package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrPayrollNotFound      = errors.New("payroll not found")
	ErrPayrollAlreadyExists = errors.New("payroll already exists for this period")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)

// InvalidTransitionError reports a lifecycle guard violation with the
// current and required status.
type InvalidTransitionError struct {
	Action   string
	Current  Status
	Required Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s payroll: status is %s, requires %s", e.Action, e.Current, e.Required)
}

// ValidateApprove guards the COMPUTED -> APPROVED transition.
func ValidateApprove(current Status) error {
	if current != StatusComputed {
		return &InvalidTransitionError{Action: "approve", Current: current, Required: StatusComputed}
	}
	return nil
}

// ValidateRelease guards the APPROVED -> RELEASED transition.
func ValidateRelease(current Status) error {
	if current != StatusApproved {
		return &InvalidTransitionError{Action: "release", Current: current, Required: StatusApproved}
	}
	return nil
}

// ValidateVoid guards the -> VOIDED transition. RELEASED payrolls cannot be
// voided; VOIDED is terminal.
func ValidateVoid(current Status) error {
	if current == StatusVoided {
		return fmt.Errorf("cannot void payroll: already voided")
	}
	if current == StatusReleased {
		return fmt.Errorf("cannot void payroll: already released")
	}
	return nil
}

// ValidateRecalculate permits recomputation only before approval.
func ValidateRecalculate(current Status) error {
	if current != StatusDraft && current != StatusComputed {
		return &InvalidTransitionError{Action: "recalculate", Current: current, Required: StatusComputed}
	}
	return nil
}

package payrule

import (
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
)

var (
	ErrPayRuleNotFound = errors.New("payroll rule not found")
	ErrInvalidDayType  = errors.New("invalid day type")
)

// MissingRuleError is a fatal configuration error: no multiplier is
// configured for the requested day/component. Multipliers encode statutory
// premiums, so the engine never defaults them to 1.0.
type MissingRuleError struct {
	OrganizationID string
	DayType        DayType
	HolidayType    *calendar.HolidayType
	Component      Component
	Date           time.Time
}

func (e *MissingRuleError) Error() string {
	holidayType := "none"
	if e.HolidayType != nil {
		holidayType = string(*e.HolidayType)
	}
	return fmt.Sprintf(
		"missing payroll rule: organization=%s day_type=%s holiday_type=%s component=%s date=%s",
		e.OrganizationID, e.DayType, holidayType, e.Component, e.Date.Format("2006-01-02"),
	)
}

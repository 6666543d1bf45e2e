package payrule

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/shopspring/decimal"
)

// DayType classifies a calendar day for pay-rule purposes.
type DayType string

const (
	DayTypeRegular DayType = "REGULAR"
	DayTypeRest    DayType = "REST"
	DayTypeHoliday DayType = "HOLIDAY"
)

// Component is the pay bucket a multiplier applies to.
type Component string

const (
	ComponentRegular   Component = "REGULAR"
	ComponentOvertime  Component = "OVERTIME"
	ComponentNightDiff Component = "NIGHT_DIFF"
)

var ComponentValues = []string{
	string(ComponentRegular),
	string(ComponentOvertime),
	string(ComponentNightDiff),
}

// PayRule is an admin-configured, time-bounded pay multiplier. A nil
// HolidayType is a wildcard matching any holiday type (and non-holidays).
type PayRule struct {
	ID             string
	OrganizationID string
	DayType        DayType
	HolidayType    *calendar.HolidayType
	Component      Component
	Multiplier     decimal.Decimal
	EffectiveFrom  time.Time
	EffectiveTo    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveOn reports whether the rule's validity window covers date.
func (r PayRule) EffectiveOn(date time.Time) bool {
	if date.Before(r.EffectiveFrom) {
		return false
	}
	return r.EffectiveTo == nil || !date.After(*r.EffectiveTo)
}

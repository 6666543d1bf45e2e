package calendar

import "time"

// HolidayType distinguishes statutory regular holidays, special non-working
// days, and company-declared holidays. Pay rules key off this.
type HolidayType string

const (
	HolidayTypeRegular           HolidayType = "REGULAR"
	HolidayTypeSpecialNonWorking HolidayType = "SPECIAL_NON_WORKING"
	HolidayTypeCompany           HolidayType = "COMPANY"
)

var HolidayTypeValues = []string{
	string(HolidayTypeRegular),
	string(HolidayTypeSpecialNonWorking),
	string(HolidayTypeCompany),
}

type Holiday struct {
	ID             string
	OrganizationID string
	Name           string
	Date           time.Time
	Type           HolidayType
	// IsRecurring means only the month/day of Date is significant; the
	// stored year is ignored when matching a work date.
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Matches reports whether the holiday falls on workDate.
func (h Holiday) Matches(workDate time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == workDate.Month() && h.Date.Day() == workDate.Day()
	}
	return h.Date.Year() == workDate.Year() &&
		h.Date.Month() == workDate.Month() &&
		h.Date.Day() == workDate.Day()
}

// EmployeeHolidayOverride pins a holiday to a single employee for a specific
// date. An override wins over any calendar holiday on the same date.
type EmployeeHolidayOverride struct {
	ID         string
	EmployeeID string
	HolidayID  string
	Date       time.Time
	Type       HolidayType
	CreatedAt  time.Time
}

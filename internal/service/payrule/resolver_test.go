package payrule

import (
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	domainrule "github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrgID = "8a0e3c92-3f6e-4e1d-9c54-2f6f3d9f1a01"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mult(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rule(dayType domainrule.DayType, holidayType *calendar.HolidayType, component domainrule.Component, multiplier string, from time.Time) domainrule.PayRule {
	return domainrule.PayRule{
		OrganizationID: testOrgID,
		DayType:        dayType,
		HolidayType:    holidayType,
		Component:      component,
		Multiplier:     mult(multiplier),
		EffectiveFrom:  from,
	}
}

func holidayType(t calendar.HolidayType) *calendar.HolidayType {
	return &t
}

func TestResolveMultiplierExactMatch(t *testing.T) {
	rules := []domainrule.PayRule{
		rule(domainrule.DayTypeRegular, nil, domainrule.ComponentRegular, "1.0", date(2025, 1, 1)),
		rule(domainrule.DayTypeRegular, nil, domainrule.ComponentOvertime, "1.25", date(2025, 1, 1)),
	}

	m, err := ResolveMultiplier(rules, testOrgID, domainrule.DayTypeRegular, nil, domainrule.ComponentOvertime, date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "1.25", m.String())
}

func TestResolveMultiplierSpecificHolidayTypeBeatsWildcard(t *testing.T) {
	rules := []domainrule.PayRule{
		rule(domainrule.DayTypeHoliday, nil, domainrule.ComponentRegular, "1.3", date(2025, 1, 1)),
		rule(domainrule.DayTypeHoliday, holidayType(calendar.HolidayTypeRegular), domainrule.ComponentRegular, "2.0", date(2025, 1, 1)),
	}

	m, err := ResolveMultiplier(rules, testOrgID, domainrule.DayTypeHoliday, holidayType(calendar.HolidayTypeRegular), domainrule.ComponentRegular, date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "2", m.String())
}

func TestResolveMultiplierWildcardCoversAnyHolidayType(t *testing.T) {
	rules := []domainrule.PayRule{
		rule(domainrule.DayTypeHoliday, nil, domainrule.ComponentRegular, "1.3", date(2025, 1, 1)),
	}

	m, err := ResolveMultiplier(rules, testOrgID, domainrule.DayTypeHoliday, holidayType(calendar.HolidayTypeCompany), domainrule.ComponentRegular, date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "1.3", m.String())
}

func TestResolveMultiplierSpecificRuleDoesNotMatchOtherTypes(t *testing.T) {
	rules := []domainrule.PayRule{
		rule(domainrule.DayTypeHoliday, holidayType(calendar.HolidayTypeRegular), domainrule.ComponentRegular, "2.0", date(2025, 1, 1)),
	}

	_, err := ResolveMultiplier(rules, testOrgID, domainrule.DayTypeHoliday, holidayType(calendar.HolidayTypeCompany), domainrule.ComponentRegular, date(2025, 3, 15))

	var missing *domainrule.MissingRuleError
	require.ErrorAs(t, err, &missing)
}

func TestResolveMultiplierLaterEffectiveFromWins(t *testing.T) {
	rules := []domainrule.PayRule{
		rule(domainrule.DayTypeRegular, nil, domainrule.ComponentRegular, "1.0", date(2024, 1, 1)),
		rule(domainrule.DayTypeRegular, nil, domainrule.ComponentRegular, "1.1", date(2025, 1, 1)),
	}

	m, err := ResolveMultiplier(rules, testOrgID, domainrule.DayTypeRegular, nil, domainrule.ComponentRegular, date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "1.1", m.String())
}

func TestResolveMultiplierExpiredRuleIgnored(t *testing.T) {
	expired := rule(domainrule.DayTypeRegular, nil, domainrule.ComponentRegular, "1.5", date(2024, 1, 1))
	to := date(2024, 12, 31)
	expired.EffectiveTo = &to

	_, err := ResolveMultiplier([]domainrule.PayRule{expired}, testOrgID, domainrule.DayTypeRegular, nil, domainrule.ComponentRegular, date(2025, 3, 15))

	var missing *domainrule.MissingRuleError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domainrule.DayTypeRegular, missing.DayType)
}

func TestResolveMultiplierNeverDefaults(t *testing.T) {
	_, err := ResolveMultiplier(nil, testOrgID, domainrule.DayTypeRest, nil, domainrule.ComponentRegular, date(2025, 3, 15))
	require.Error(t, err)
}

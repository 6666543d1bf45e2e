package payrule

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/shopspring/decimal"
)

// ResolveMultiplier finds the applicable pay multiplier among rules.
//
// A rule matches on exact organization, day type, and component; its holiday
// type must equal the queried one or be the NULL wildcard; its validity
// window must cover date. Ties break on the most recent EffectiveFrom, then
// a specific holiday type beats the wildcard. No match is fatal: multipliers
// encode statutory premiums and are never defaulted to 1.0.
func ResolveMultiplier(rules []payrule.PayRule, organizationID string, dayType payrule.DayType, holidayType *calendar.HolidayType, component payrule.Component, date time.Time) (decimal.Decimal, error) {
	var best *payrule.PayRule
	for i := range rules {
		r := rules[i]
		if r.OrganizationID != organizationID || r.DayType != dayType || r.Component != component {
			continue
		}
		if !r.EffectiveOn(date) {
			continue
		}
		if !holidayTypeMatches(r.HolidayType, holidayType) {
			continue
		}
		if best == nil || betterMatch(r, *best) {
			best = &r
		}
	}
	if best == nil {
		return decimal.Zero, &payrule.MissingRuleError{
			OrganizationID: organizationID,
			DayType:        dayType,
			HolidayType:    holidayType,
			Component:      component,
			Date:           date,
		}
	}
	return best.Multiplier, nil
}

func holidayTypeMatches(ruleType, queryType *calendar.HolidayType) bool {
	if ruleType == nil {
		// Wildcard row.
		return true
	}
	return queryType != nil && *ruleType == *queryType
}

func betterMatch(candidate, current payrule.PayRule) bool {
	if candidate.EffectiveFrom.After(current.EffectiveFrom) {
		return true
	}
	if candidate.EffectiveFrom.Before(current.EffectiveFrom) {
		return false
	}
	return candidate.HolidayType != nil && current.HolidayType == nil
}

package rates

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/shopspring/decimal"
)

// Resolve picks the single applicable bracket from rows for the given salary
// and date. Among matches the highest MinSalary wins, so a misconfigured
// overlap between a narrow bracket and the open-ended top bracket resolves
// to the more specific one. No match is a fatal configuration error.
func Resolve(rows []rate.Row, organizationID string, scheme rate.Scheme, salary decimal.Decimal, date time.Time) (rate.Row, error) {
	var best *rate.Row
	for i := range rows {
		r := rows[i]
		if r.Scheme != scheme || r.OrganizationID != organizationID {
			continue
		}
		if !r.EffectiveOn(date) || !r.CoversSalary(salary) {
			continue
		}
		if best == nil || r.MinSalary.GreaterThan(best.MinSalary) {
			best = &r
		}
	}
	if best == nil {
		return rate.Row{}, &rate.MissingRateError{
			Scheme:         scheme,
			OrganizationID: organizationID,
			Salary:         salary,
			Date:           date,
		}
	}
	return *best, nil
}

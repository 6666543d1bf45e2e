package rates

import (
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrgID = "8a0e3c92-3f6e-4e1d-9c54-2f6f3d9f1a01"

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func sssBracket(min string, max *string, employeeRate string, from time.Time) rate.Row {
	row := rate.Row{
		ID:             min,
		OrganizationID: testOrgID,
		Scheme:         rate.SchemeSSS,
		MinSalary:      d(min),
		EffectiveFrom:  from,
		EmployeeRate:   d(employeeRate),
	}
	if max != nil {
		row.MaxSalary = dp(*max)
	}
	return row
}

func TestResolvePicksCoveringBracket(t *testing.T) {
	max1 := "9999.99"
	max2 := "19999.99"
	rows := []rate.Row{
		sssBracket("0", &max1, "0.04", date(2025, 1, 1)),
		sssBracket("10000", &max2, "0.045", date(2025, 1, 1)),
		sssBracket("20000", nil, "0.05", date(2025, 1, 1)),
	}

	row, err := Resolve(rows, testOrgID, rate.SchemeSSS, d("16000"), date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "10000", row.MinSalary.String())

	row, err = Resolve(rows, testOrgID, rate.SchemeSSS, d("50000"), date(2025, 3, 15))
	require.NoError(t, err)
	assert.True(t, row.OpenEnded())
}

func TestResolveIgnoresExpiredRows(t *testing.T) {
	expired := sssBracket("0", nil, "0.04", date(2024, 1, 1))
	expiredTo := date(2024, 12, 31)
	expired.EffectiveTo = &expiredTo
	current := sssBracket("0", nil, "0.045", date(2025, 1, 1))

	row, err := Resolve([]rate.Row{expired, current}, testOrgID, rate.SchemeSSS, d("16000"), date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "0.045", row.EmployeeRate.String())
}

func TestResolveTieBreaksOnHighestMinSalary(t *testing.T) {
	// Overlapping brackets are rejected at write time; if two slip through,
	// the more specific one wins.
	rows := []rate.Row{
		sssBracket("0", nil, "0.04", date(2025, 1, 1)),
		sssBracket("10000", nil, "0.05", date(2025, 1, 1)),
	}

	row, err := Resolve(rows, testOrgID, rate.SchemeSSS, d("16000"), date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "10000", row.MinSalary.String())
}

func TestResolveMissingBracketFails(t *testing.T) {
	max1 := "9999.99"
	rows := []rate.Row{
		sssBracket("0", &max1, "0.04", date(2025, 1, 1)),
	}

	_, err := Resolve(rows, testOrgID, rate.SchemeSSS, d("16000"), date(2025, 3, 15))
	require.Error(t, err)

	var missing *rate.MissingRateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, rate.SchemeSSS, missing.Scheme)
}

func TestResolveIgnoresOtherOrganizations(t *testing.T) {
	other := sssBracket("0", nil, "0.04", date(2025, 1, 1))
	other.OrganizationID = "b7a6c2de-0000-4000-8000-000000000002"

	_, err := Resolve([]rate.Row{other}, testOrgID, rate.SchemeSSS, d("16000"), date(2025, 3, 15))

	var missing *rate.MissingRateError
	require.ErrorAs(t, err, &missing)
}

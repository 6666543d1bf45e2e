package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrgID = "8a0e3c92-3f6e-4e1d-9c54-2f6f3d9f1a01"

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &database.DB{Pool: mock}
}

var rateColumnNames = []string{
	"id", "organization_id", "scheme", "min_salary", "max_salary",
	"effective_from", "effective_to",
	"base_tax", "tax_rate", "employee_rate", "employer_rate", "ec_rate",
	"created_at", "updated_at",
}

func TestRateRepositoryListEffective(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRateRepository(db)

	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	maxSalary := decimal.RequireFromString("29999.99")

	rows := pgxmock.NewRows(rateColumnNames).
		AddRow("sss-0", testOrgID, rate.SchemeSSS, decimal.Zero, &maxSalary,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil,
			decimal.Zero, decimal.Zero, decimal.RequireFromString("0.045"), decimal.RequireFromString("0.095"), decimal.RequireFromString("0.01"),
			now, now).
		AddRow("sss-top", testOrgID, rate.SchemeSSS, decimal.RequireFromString("30000"), nil,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil,
			decimal.Zero, decimal.Zero, decimal.RequireFromString("0.045"), decimal.RequireFromString("0.095"), decimal.RequireFromString("0.01"),
			now, now)

	mock.ExpectQuery(`SELECT (.+) FROM statutory_rates`).
		WithArgs(testOrgID, rate.SchemeSSS, asOf).
		WillReturnRows(rows)

	result, err := repo.ListEffective(context.Background(), testOrgID, rate.SchemeSSS, asOf)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "sss-0", result[0].ID)
	require.NotNil(t, result[0].MaxSalary)
	assert.Equal(t, "29999.99", result[0].MaxSalary.String())
	assert.Nil(t, result[1].MaxSalary)
	assert.True(t, result[1].OpenEnded())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepositoryCreate(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRateRepository(db)

	row := rate.Row{
		ID:             "rate-1",
		OrganizationID: testOrgID,
		Scheme:         rate.SchemePagibig,
		MinSalary:      decimal.Zero,
		EffectiveFrom:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EmployeeRate:   decimal.RequireFromString("0.02"),
	}

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO statutory_rates`).
		WithArgs(row.ID, row.OrganizationID, row.Scheme, row.MinSalary, row.MaxSalary,
			row.EffectiveFrom, row.EffectiveTo,
			row.BaseTax, row.TaxRate, row.EmployeeRate, row.EmployerRate, row.ECRate).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), row)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepositoryDelete(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRateRepository(db)

	mock.ExpectExec(`DELETE FROM statutory_rates`).
		WithArgs("rate-1", testOrgID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), "rate-1", testOrgID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepositoryDeleteNotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRateRepository(db)

	mock.ExpectExec(`DELETE FROM statutory_rates`).
		WithArgs("missing", testOrgID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing", testOrgID)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestPayrollRepositoryGetByIDNotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM payrolls`).
		WithArgs("missing", testOrgID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing", testOrgID)
	require.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepositoryUpdateStatusCommits(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	now := time.Now()
	userID := "1f9d2e4b-6a7c-4d3e-9b1a-0c8e7f6d5a43"
	p := payroll.Payroll{
		ID:             "payroll-1",
		OrganizationID: testOrgID,
		Status:         payroll.StatusApproved,
		ApprovedBy:     &userID,
		ApprovedAt:     &now,
	}
	log := payroll.Log{
		ID:             "log-1",
		PayrollID:      p.ID,
		Action:         "approve",
		PreviousStatus: payroll.StatusComputed,
		NewStatus:      payroll.StatusApproved,
		UserID:         userID,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE payrolls`).
		WithArgs(p.Status,
			p.ApprovedBy, p.ApprovedAt,
			p.ReleasedBy, p.ReleasedAt,
			p.VoidedBy, p.VoidedAt, p.VoidReason,
			p.ID, p.OrganizationID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO payroll_logs`).
		WithArgs(log.ID, log.PayrollID, log.Action, log.PreviousStatus, log.NewStatus, log.Reason, log.UserID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateStatus(context.Background(), p, log))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepositoryUpdateStatusRollsBackOnMissingRow(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	p := payroll.Payroll{ID: "missing", OrganizationID: testOrgID, Status: payroll.StatusApproved}
	log := payroll.Log{ID: "log-1", PayrollID: p.ID, Action: "approve"}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE payrolls`).
		WithArgs(anyArgs(10)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), p, log)
	require.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepositoryCommitComputationUniqueViolation(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	p := payroll.Payroll{
		ID:             "payroll-1",
		EmployeeID:     "4d2b1a77-9c0e-4b6a-8f21-7e5d3c2b1a90",
		OrganizationID: testOrgID,
		PeriodStart:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		GrossPay:       decimal.RequireFromString("16000"),
		Status:         payroll.StatusComputed,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO payrolls`).
		WithArgs(anyArgs(20)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_payrolls_active_period"})
	mock.ExpectRollback()

	_, err := repo.CommitComputation(context.Background(), p, nil, nil, payroll.Log{ID: "log-1", PayrollID: p.ID, Action: "generate"})
	require.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepositoryListEarnings(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "payroll_id", "type", "minutes", "amount", "created_at"}).
		AddRow("earn-1", "payroll-1", payroll.EarningOvertime, 120, decimal.RequireFromString("150.00"), now).
		AddRow("earn-2", "payroll-1", payroll.EarningRegular, 2160, decimal.RequireFromString("2160.00"), now)

	mock.ExpectQuery(`SELECT (.+) FROM payroll_earnings`).
		WithArgs("payroll-1").
		WillReturnRows(rows)

	earnings, err := repo.ListEarnings(context.Background(), "payroll-1")
	require.NoError(t, err)
	require.Len(t, earnings, 2)
	assert.Equal(t, payroll.EarningOvertime, earnings[0].Type)
	assert.Equal(t, 120, earnings[0].Minutes)
	assert.Equal(t, "150.00", earnings[0].Amount.StringFixed(2))

	require.NoError(t, mock.ExpectationsWereMet())
}

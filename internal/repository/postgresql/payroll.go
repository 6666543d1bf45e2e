package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `id, employee_id, organization_id, period_start, period_end,
		   gross_pay, taxable_income, tax, philhealth, sss, pagibig,
		   late_deduction, absence_deduction, total_deductions, net_pay,
		   absent_days, late_minutes, late_instances,
		   status, computed_at, approved_by, approved_at, released_by, released_at,
		   voided_by, voided_at, void_reason, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.OrganizationID, &p.PeriodStart, &p.PeriodEnd,
		&p.GrossPay, &p.TaxableIncome, &p.Tax, &p.Philhealth, &p.SSS, &p.Pagibig,
		&p.LateDeduction, &p.AbsenceDeduction, &p.TotalDeductions, &p.NetPay,
		&p.AbsentDays, &p.LateMinutes, &p.LateInstances,
		&p.Status, &p.ComputedAt, &p.ApprovedBy, &p.ApprovedAt, &p.ReleasedBy, &p.ReleasedAt,
		&p.VoidedBy, &p.VoidedAt, &p.VoidReason, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE id = $1 AND organization_id = $2
	`
	p, err := scanPayroll(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

// GetActiveByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetActiveByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE employee_id = $1 AND period_start = $2 AND period_end = $3
		  AND status <> $4
	`
	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, periodStart, periodEnd, payroll.StatusVoided))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, organizationID string, filter payroll.Filter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"organization_id = $1"}
	args := []interface{}{organizationID}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, "employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.PeriodStart != nil {
		args = append(args, *filter.PeriodStart)
		conditions = append(conditions, "period_start >= $"+strconv.Itoa(len(args)))
	}
	if filter.PeriodEnd != nil {
		args = append(args, *filter.PeriodEnd)
		conditions = append(conditions, "period_end <= $"+strconv.Itoa(len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM payrolls WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE ` + where + `
		ORDER BY period_start DESC, created_at DESC
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	return result, total, rows.Err()
}

// CommitComputation implements payroll.PayrollRepository. The upsert, line
// item replacement, and audit log land in one transaction.
func (r *payrollRepositoryImpl) CommitComputation(ctx context.Context, p payroll.Payroll, earnings []payroll.Earning, deductions []payroll.Deduction, log payroll.Log) (payroll.Payroll, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context, tx pgx.Tx) error {
		upsert := `
			INSERT INTO payrolls (
				id, employee_id, organization_id, period_start, period_end,
				gross_pay, taxable_income, tax, philhealth, sss, pagibig,
				late_deduction, absence_deduction, total_deductions, net_pay,
				absent_days, late_minutes, late_instances,
				status, computed_at, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
				$12, $13, $14, $15, $16, $17, $18, $19, $20, NOW(), NOW()
			)
			ON CONFLICT (id) DO UPDATE SET
				gross_pay = EXCLUDED.gross_pay,
				taxable_income = EXCLUDED.taxable_income,
				tax = EXCLUDED.tax,
				philhealth = EXCLUDED.philhealth,
				sss = EXCLUDED.sss,
				pagibig = EXCLUDED.pagibig,
				late_deduction = EXCLUDED.late_deduction,
				absence_deduction = EXCLUDED.absence_deduction,
				total_deductions = EXCLUDED.total_deductions,
				net_pay = EXCLUDED.net_pay,
				absent_days = EXCLUDED.absent_days,
				late_minutes = EXCLUDED.late_minutes,
				late_instances = EXCLUDED.late_instances,
				status = EXCLUDED.status,
				computed_at = EXCLUDED.computed_at,
				updated_at = NOW()
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(txCtx, upsert,
			p.ID, p.EmployeeID, p.OrganizationID, p.PeriodStart, p.PeriodEnd,
			p.GrossPay, p.TaxableIncome, p.Tax, p.Philhealth, p.SSS, p.Pagibig,
			p.LateDeduction, p.AbsenceDeduction, p.TotalDeductions, p.NetPay,
			p.AbsentDays, p.LateMinutes, p.LateInstances,
			p.Status, p.ComputedAt,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(txCtx, `DELETE FROM payroll_earnings WHERE payroll_id = $1`, p.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(txCtx, `DELETE FROM payroll_deductions WHERE payroll_id = $1`, p.ID); err != nil {
			return err
		}

		for _, e := range earnings {
			_, err := tx.Exec(txCtx, `
				INSERT INTO payroll_earnings (id, payroll_id, type, minutes, amount, created_at)
				VALUES ($1, $2, $3, $4, $5, NOW())
			`, e.ID, e.PayrollID, e.Type, e.Minutes, e.Amount)
			if err != nil {
				return err
			}
		}
		for _, d := range deductions {
			_, err := tx.Exec(txCtx, `
				INSERT INTO payroll_deductions (id, payroll_id, type, amount, created_at)
				VALUES ($1, $2, $3, $4, NOW())
			`, d.ID, d.PayrollID, d.Type, d.Amount)
			if err != nil {
				return err
			}
		}

		return insertLog(txCtx, tx, log)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

// UpdateStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, p payroll.Payroll, log payroll.Log) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE payrolls
			SET status = $1,
				approved_by = $2, approved_at = $3,
				released_by = $4, released_at = $5,
				voided_by = $6, voided_at = $7, void_reason = $8,
				updated_at = NOW()
			WHERE id = $9 AND organization_id = $10
		`
		commandTag, err := tx.Exec(txCtx, query,
			p.Status,
			p.ApprovedBy, p.ApprovedAt,
			p.ReleasedBy, p.ReleasedAt,
			p.VoidedBy, p.VoidedAt, p.VoidReason,
			p.ID, p.OrganizationID,
		)
		if err != nil {
			return err
		}
		if commandTag.RowsAffected() != 1 {
			return payroll.ErrPayrollNotFound
		}
		return insertLog(txCtx, tx, log)
	})
}

func insertLog(ctx context.Context, tx pgx.Tx, log payroll.Log) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payroll_logs (id, payroll_id, action, previous_status, new_status, reason, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`, log.ID, log.PayrollID, log.Action, log.PreviousStatus, log.NewStatus, log.Reason, log.UserID)
	if err != nil {
		return fmt.Errorf("failed to insert payroll log: %w", err)
	}
	return nil
}

// ListEarnings implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListEarnings(ctx context.Context, payrollID string) ([]payroll.Earning, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, payroll_id, type, minutes, amount, created_at
		FROM payroll_earnings
		WHERE payroll_id = $1
		ORDER BY type
	`
	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []payroll.Earning
	for rows.Next() {
		var e payroll.Earning
		if err := rows.Scan(&e.ID, &e.PayrollID, &e.Type, &e.Minutes, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// ListDeductions implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListDeductions(ctx context.Context, payrollID string) ([]payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, payroll_id, type, amount, created_at
		FROM payroll_deductions
		WHERE payroll_id = $1
		ORDER BY type
	`
	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []payroll.Deduction
	for rows.Next() {
		var d payroll.Deduction
		if err := rows.Scan(&d.ID, &d.PayrollID, &d.Type, &d.Amount, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// ListLogs implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListLogs(ctx context.Context, payrollID string) ([]payroll.Log, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, payroll_id, action, previous_status, new_status, reason, user_id, created_at
		FROM payroll_logs
		WHERE payroll_id = $1
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []payroll.Log
	for rows.Next() {
		var l payroll.Log
		if err := rows.Scan(&l.ID, &l.PayrollID, &l.Action, &l.PreviousStatus, &l.NewStatus, &l.Reason, &l.UserID, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

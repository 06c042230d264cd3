package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
	"github.com/vietcargo/fleetpay-backend-go/internal/pkg/database"
)

type advancePaymentRepository struct {
	db *database.DB
}

func NewAdvancePaymentRepository(db *database.DB) payroll.AdvancePaymentRepository {
	return &advancePaymentRepository{db: db}
}

func (r *advancePaymentRepository) Create(ctx context.Context, advance payroll.AdvancePayment) (payroll.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	if advance.ID == "" {
		advance.ID = uuid.NewString()
	}

	query := `
		INSERT INTO advance_payments (id, tenant_id, driver_id, payment_date, amount, is_deducted)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query,
		advance.ID, advance.TenantID, advance.DriverID, advance.PaymentDate, advance.Amount,
	).Scan(&advance.CreatedAt)
	if err != nil {
		return payroll.AdvancePayment{}, fmt.Errorf("failed to create advance payment: %w", err)
	}
	advance.IsDeducted = false

	return advance, nil
}

func (r *advancePaymentRepository) SumUndeductedInWindow(ctx context.Context, tenantID, driverID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advance_payments
		WHERE tenant_id = $1 AND driver_id = $2
		  AND payment_date >= $3 AND payment_date <= $4
		  AND is_deducted = false
	`

	var total int64
	if err := q.QueryRow(ctx, query, tenantID, driverID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum advance payments: %w", err)
	}
	return total, nil
}

// ClaimInWindow consumes the window's undeducted rows in one UPDATE. Row
// locking inside the single statement gives at-most-once semantics per
// (driver, period): of two concurrent payroll confirmations, only one can
// flip a given row, so an advance is never deducted twice.
func (r *advancePaymentRepository) ClaimInWindow(ctx context.Context, tenantID, driverID string, from, to time.Time, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_payments
		SET is_deducted = true, deducted_month = $5, deducted_year = $6
		WHERE tenant_id = $1 AND driver_id = $2
		  AND payment_date >= $3 AND payment_date <= $4
		  AND is_deducted = false
		RETURNING amount
	`

	rows, err := q.Query(ctx, query, tenantID, driverID, from, to, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to claim advance payments: %w", err)
	}
	defer rows.Close()

	var total int64
	for rows.Next() {
		var amount int64
		if err := rows.Scan(&amount); err != nil {
			return 0, fmt.Errorf("failed to scan claimed amount: %w", err)
		}
		total += amount
	}
	return total, rows.Err()
}

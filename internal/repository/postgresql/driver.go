package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/driver"
	"github.com/vietcargo/fleetpay-backend-go/internal/pkg/database"
)

type driverRepository struct {
	db *database.DB
}

func NewDriverRepository(db *database.DB) driver.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) GetByID(ctx context.Context, id string, tenantID string) (driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, full_name, hire_date, base_salary, dependent_count,
			   status, created_at, updated_at
		FROM drivers
		WHERE id = $1 AND tenant_id = $2
	`

	var d driver.Driver
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&d.ID, &d.TenantID, &d.FullName, &d.HireDate, &d.BaseSalary, &d.DependentCount,
		&d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return driver.Driver{}, driver.ErrDriverNotFound
		}
		return driver.Driver{}, fmt.Errorf("failed to get driver: %w", err)
	}

	return d, nil
}

func (r *driverRepository) ListActiveByTenant(ctx context.Context, tenantID string) ([]driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, full_name, hire_date, base_salary, dependent_count,
			   status, created_at, updated_at
		FROM drivers
		WHERE tenant_id = $1 AND status = $2
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, tenantID, driver.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []driver.Driver
	for rows.Next() {
		var d driver.Driver
		if err := rows.Scan(
			&d.ID, &d.TenantID, &d.FullName, &d.HireDate, &d.BaseSalary, &d.DependentCount,
			&d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

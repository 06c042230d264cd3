package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
	"github.com/vietcargo/fleetpay-backend-go/internal/fixtures"
	"github.com/vietcargo/fleetpay-backend-go/internal/repository/postgresql"
)

func defaultSalarySetting(tenantID string) payroll.DriverSalarySetting {
	s := fixtures.DefaultDriverSalarySetting()
	s.TenantID = tenantID
	return s
}

func seedDriver(t *testing.T, ctx context.Context, s *TestDatabaseSetup, tenantID string) string {
	t.Helper()

	driverID := uuid.NewString()
	_, err := s.DB.Exec(ctx, `
		INSERT INTO drivers (id, tenant_id, full_name, hire_date, base_salary, dependent_count, status, created_at, updated_at)
		VALUES ($1, $2, 'Test Driver', '2020-01-01', 8000000, 0, 'ACTIVE', NOW(), NOW())
	`, driverID, tenantID)
	require.NoError(t, err)
	return driverID
}

func TestAdvancePaymentRepository_ClaimIsOneShot(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	tenantID := uuid.NewString()
	driverID := seedDriver(t, ctx, setup, tenantID)
	repo := postgresql.NewAdvancePaymentRepository(setup.DB)

	for _, a := range []payroll.AdvancePayment{
		{TenantID: tenantID, DriverID: driverID, PaymentDate: time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC), Amount: 1_000_000},
		{TenantID: tenantID, DriverID: driverID, PaymentDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), Amount: 500_000},
		// Before the window opens on the 11th.
		{TenantID: tenantID, DriverID: driverID, PaymentDate: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC), Amount: 300_000},
	} {
		_, err := repo.Create(ctx, a)
		require.NoError(t, err)
	}

	from := time.Date(2024, time.December, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	// Preview leaves the rows untouched.
	total, err := repo.SumUndeductedInWindow(ctx, tenantID, driverID, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000), total)

	total, err = repo.SumUndeductedInWindow(ctx, tenantID, driverID, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000), total)

	// First claim consumes the window.
	claimed, err := repo.ClaimInWindow(ctx, tenantID, driverID, from, to, 12, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000), claimed)

	// Second claim of the unchanged window finds nothing.
	claimed, err = repo.ClaimInWindow(ctx, tenantID, driverID, from, to, 12, 2024)
	require.NoError(t, err)
	assert.EqualValues(t, 0, claimed)

	// Claimed rows carry the audit stamp; out-of-window rows survive.
	var deductedCount, month, year int
	err = setup.DB.QueryRow(ctx, `
		SELECT COUNT(*), MIN(deducted_month), MIN(deducted_year)
		FROM advance_payments
		WHERE tenant_id = $1 AND is_deducted = true
	`, tenantID).Scan(&deductedCount, &month, &year)
	require.NoError(t, err)
	assert.Equal(t, 2, deductedCount)
	assert.Equal(t, 12, month)
	assert.Equal(t, 2024, year)

	remaining, err := repo.SumUndeductedInWindow(ctx, tenantID, driverID,
		time.Date(2024, time.November, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(300_000), remaining)
}

func TestSettingRepository_ActivateDemotesPreviousActive(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	tenantID := uuid.NewString()
	repo := postgresql.NewSettingRepository(setup.DB)

	first := defaultSalarySetting(tenantID)
	_, err := repo.ActivateSalarySetting(ctx, first)
	require.NoError(t, err)

	second := defaultSalarySetting(tenantID)
	second.PortGateFee = 75_000
	activated, err := repo.ActivateSalarySetting(ctx, second)
	require.NoError(t, err)

	active, err := repo.GetActiveSalarySetting(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, activated.ID, active.ID)
	assert.Equal(t, int64(75_000), active.PortGateFee)

	var activeCount int
	err = setup.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM driver_salary_settings WHERE tenant_id = $1 AND status = 'ACTIVE'
	`, tenantID).Scan(&activeCount)
	require.NoError(t, err)
	assert.Equal(t, 1, activeCount)
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
	"github.com/vietcargo/fleetpay-backend-go/internal/pkg/database"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) payroll.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetActiveSalarySetting(ctx context.Context, tenantID string) (payroll.DriverSalarySetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, status,
			   distance_cuts, port_rates, warehouse_rates,
			   port_gate_fee, flatbed_tarp_fee, warehouse_to_customer_bonus,
			   second_trip_bonus, third_trip_bonus,
			   bonus_45_50_trips, bonus_51_54_trips, bonus_55_plus_trips,
			   holiday_multiplier, created_at, updated_at
		FROM driver_salary_settings
		WHERE tenant_id = $1 AND status = $2
	`

	var (
		s              payroll.DriverSalarySetting
		cuts           []float64
		portRates      []int64
		warehouseRates []int64
	)
	err := q.QueryRow(ctx, query, tenantID, payroll.SettingStatusActive).Scan(
		&s.ID, &s.TenantID, &s.Status,
		&cuts, &portRates, &warehouseRates,
		&s.PortGateFee, &s.FlatbedTarpFee, &s.WarehouseToCustomerBonus,
		&s.SecondTripBonus, &s.ThirdTripBonus,
		&s.Bonus45To50Trips, &s.Bonus51To54Trips, &s.Bonus55PlusTrips,
		&s.HolidayMultiplier, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.DriverSalarySetting{}, payroll.ErrSalarySettingNotFound
		}
		return payroll.DriverSalarySetting{}, fmt.Errorf("failed to get salary setting: %w", err)
	}

	if len(cuts) != payroll.DistanceCutCount || len(portRates) != payroll.PayoutTierCount || len(warehouseRates) != payroll.PayoutTierCount {
		return payroll.DriverSalarySetting{}, fmt.Errorf("salary setting %s has malformed bracket arrays", s.ID)
	}
	copy(s.DistanceCuts[:], cuts)
	copy(s.PortRates[:], portRates)
	copy(s.WarehouseRates[:], warehouseRates)

	return s, nil
}

func (r *settingRepository) GetActiveTaxSetting(ctx context.Context, tenantID string) (payroll.IncomeTaxSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, status,
			   bracket_limits, bracket_rates, bracket_deductions,
			   personal_deduction, dependent_deduction,
			   social_insurance_rate, health_insurance_rate, unemployment_insurance_rate,
			   created_at, updated_at
		FROM income_tax_settings
		WHERE tenant_id = $1 AND status = $2
	`

	var (
		s          payroll.IncomeTaxSetting
		limits     []int64
		rates      []decimal.Decimal
		deductions []int64
	)
	err := q.QueryRow(ctx, query, tenantID, payroll.SettingStatusActive).Scan(
		&s.ID, &s.TenantID, &s.Status,
		&limits, &rates, &deductions,
		&s.PersonalDeduction, &s.DependentDeduction,
		&s.SocialInsuranceRate, &s.HealthInsuranceRate, &s.UnemploymentInsuranceRate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.IncomeTaxSetting{}, payroll.ErrTaxSettingNotFound
		}
		return payroll.IncomeTaxSetting{}, fmt.Errorf("failed to get tax setting: %w", err)
	}

	if len(limits) != payroll.TaxBracketCount || len(rates) != payroll.TaxBracketCount || len(deductions) != payroll.TaxBracketCount {
		return payroll.IncomeTaxSetting{}, fmt.Errorf("tax setting %s has malformed bracket arrays", s.ID)
	}
	for i := range s.Brackets {
		s.Brackets[i] = payroll.TaxBracket{
			Limit:     limits[i],
			Rate:      rates[i],
			Deduction: deductions[i],
		}
	}

	return s, nil
}

func (r *settingRepository) ActivateSalarySetting(ctx context.Context, setting payroll.DriverSalarySetting) (payroll.DriverSalarySetting, error) {
	if err := setting.Validate(); err != nil {
		return payroll.DriverSalarySetting{}, err
	}
	if setting.ID == "" {
		setting.ID = uuid.NewString()
	}
	setting.Status = payroll.SettingStatusActive

	err := WithTransaction(ctx, r.db, func(txCtx context.Context, _ pgx.Tx) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `
			UPDATE driver_salary_settings SET status = $1, updated_at = NOW()
			WHERE tenant_id = $2 AND status = $3
		`, payroll.SettingStatusInactive, setting.TenantID, payroll.SettingStatusActive); err != nil {
			return fmt.Errorf("failed to demote salary setting: %w", err)
		}

		return q.QueryRow(txCtx, `
			INSERT INTO driver_salary_settings (
				id, tenant_id, status,
				distance_cuts, port_rates, warehouse_rates,
				port_gate_fee, flatbed_tarp_fee, warehouse_to_customer_bonus,
				second_trip_bonus, third_trip_bonus,
				bonus_45_50_trips, bonus_51_54_trips, bonus_55_plus_trips,
				holiday_multiplier
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING created_at, updated_at
		`,
			setting.ID, setting.TenantID, setting.Status,
			setting.DistanceCuts[:], setting.PortRates[:], setting.WarehouseRates[:],
			setting.PortGateFee, setting.FlatbedTarpFee, setting.WarehouseToCustomerBonus,
			setting.SecondTripBonus, setting.ThirdTripBonus,
			setting.Bonus45To50Trips, setting.Bonus51To54Trips, setting.Bonus55PlusTrips,
			setting.HolidayMultiplier,
		).Scan(&setting.CreatedAt, &setting.UpdatedAt)
	})
	if err != nil {
		return payroll.DriverSalarySetting{}, err
	}

	return setting, nil
}

func (r *settingRepository) ActivateTaxSetting(ctx context.Context, setting payroll.IncomeTaxSetting) (payroll.IncomeTaxSetting, error) {
	if err := setting.Validate(); err != nil {
		return payroll.IncomeTaxSetting{}, err
	}
	if setting.ID == "" {
		setting.ID = uuid.NewString()
	}
	setting.Status = payroll.SettingStatusActive

	limits := make([]int64, payroll.TaxBracketCount)
	rates := make([]decimal.Decimal, payroll.TaxBracketCount)
	deductions := make([]int64, payroll.TaxBracketCount)
	for i, b := range setting.Brackets {
		limits[i] = b.Limit
		rates[i] = b.Rate
		deductions[i] = b.Deduction
	}

	err := WithTransaction(ctx, r.db, func(txCtx context.Context, _ pgx.Tx) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `
			UPDATE income_tax_settings SET status = $1, updated_at = NOW()
			WHERE tenant_id = $2 AND status = $3
		`, payroll.SettingStatusInactive, setting.TenantID, payroll.SettingStatusActive); err != nil {
			return fmt.Errorf("failed to demote tax setting: %w", err)
		}

		return q.QueryRow(txCtx, `
			INSERT INTO income_tax_settings (
				id, tenant_id, status,
				bracket_limits, bracket_rates, bracket_deductions,
				personal_deduction, dependent_deduction,
				social_insurance_rate, health_insurance_rate, unemployment_insurance_rate
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING created_at, updated_at
		`,
			setting.ID, setting.TenantID, setting.Status,
			limits, rates, deductions,
			setting.PersonalDeduction, setting.DependentDeduction,
			setting.SocialInsuranceRate, setting.HealthInsuranceRate, setting.UnemploymentInsuranceRate,
		).Scan(&setting.CreatedAt, &setting.UpdatedAt)
	})
	if err != nil {
		return payroll.IncomeTaxSetting{}, err
	}

	return setting, nil
}

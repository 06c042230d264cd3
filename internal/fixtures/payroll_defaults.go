package fixtures

import (
	"github.com/shopspring/decimal"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
)

// DefaultIncomeTaxSetting returns the 2024 Vietnamese monthly TNCN table:
// seven progressive brackets with their subtractive deductions, the 11M
// personal and 4.4M per-dependent deductions, and the 8/1.5/1 percent
// mandatory insurance rates. Used as seed data and by tests.
func DefaultIncomeTaxSetting() payroll.IncomeTaxSetting {
	return payroll.IncomeTaxSetting{
		Status: payroll.SettingStatusActive,
		Brackets: [payroll.TaxBracketCount]payroll.TaxBracket{
			{Limit: 5_000_000, Rate: decimal.NewFromFloat(0.05), Deduction: 0},
			{Limit: 10_000_000, Rate: decimal.NewFromFloat(0.10), Deduction: 250_000},
			{Limit: 18_000_000, Rate: decimal.NewFromFloat(0.15), Deduction: 750_000},
			{Limit: 32_000_000, Rate: decimal.NewFromFloat(0.20), Deduction: 1_650_000},
			{Limit: 52_000_000, Rate: decimal.NewFromFloat(0.25), Deduction: 3_250_000},
			{Limit: 80_000_000, Rate: decimal.NewFromFloat(0.30), Deduction: 5_850_000},
			{Limit: 0, Rate: decimal.NewFromFloat(0.35), Deduction: 9_850_000},
		},
		PersonalDeduction:         11_000_000,
		DependentDeduction:        4_400_000,
		SocialInsuranceRate:       decimal.NewFromFloat(0.08),
		HealthInsuranceRate:       decimal.NewFromFloat(0.015),
		UnemploymentInsuranceRate: decimal.NewFromFloat(0.01),
	}
}

// DefaultDriverSalarySetting returns a representative container tariff:
// thirteen payout tiers over twelve distance cuts for each origin type,
// with the standard flat fees and bonuses.
func DefaultDriverSalarySetting() payroll.DriverSalarySetting {
	return payroll.DriverSalarySetting{
		Status: payroll.SettingStatusActive,
		DistanceCuts: [payroll.DistanceCutCount]float64{
			10, 20, 30, 40, 60, 80, 100, 130, 160, 200, 250, 300,
		},
		PortRates: [payroll.PayoutTierCount]int64{
			350_000, 420_000, 500_000, 580_000, 680_000, 800_000, 950_000,
			1_100_000, 1_300_000, 1_550_000, 1_850_000, 2_200_000, 2_600_000,
		},
		WarehouseRates: [payroll.PayoutTierCount]int64{
			300_000, 360_000, 430_000, 510_000, 600_000, 700_000, 830_000,
			980_000, 1_150_000, 1_380_000, 1_650_000, 1_980_000, 2_350_000,
		},
		PortGateFee:              50_000,
		FlatbedTarpFee:           100_000,
		WarehouseToCustomerBonus: 80_000,
		SecondTripBonus:          100_000,
		ThirdTripBonus:           150_000,
		Bonus45To50Trips:         500_000,
		Bonus51To54Trips:         800_000,
		Bonus55PlusTrips:         1_200_000,
		HolidayMultiplier:        2.0,
	}
}

package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingStatus enum. At most one setting per tenant may be ACTIVE at a time;
// ActivateSalarySetting/ActivateTaxSetting enforce this transactionally.
type SettingStatus string

const (
	SettingStatusActive   SettingStatus = "ACTIVE"
	SettingStatusInactive SettingStatus = "INACTIVE"
)

const (
	// DistanceCutCount is the number of bounded distance cut points.
	DistanceCutCount = 12
	// PayoutTierCount is DistanceCutCount bounded tiers plus the catch-all.
	PayoutTierCount = 13
	// TaxBracketCount is the number of progressive income tax brackets.
	TaxBracketCount = 7
)

// DriverSalarySetting is the tenant-wide trip tariff. Distance cuts are
// monotonically increasing; a trip's distance selects the first cut it does
// not exceed, and the matching tier of the port or warehouse table pays it.
type DriverSalarySetting struct {
	ID       string
	TenantID string
	Status   SettingStatus

	// DistanceCuts are the upper bounds (km, inclusive) of tiers 1..12.
	DistanceCuts [DistanceCutCount]float64
	// PortRates pay port-origin trips per tier; tier 13 has no upper bound.
	PortRates [PayoutTierCount]int64
	// WarehouseRates pay warehouse-origin trips per tier.
	WarehouseRates [PayoutTierCount]int64

	// PortGateFee is added once per port-origin trip, never for warehouse trips.
	PortGateFee int64
	// FlatbedTarpFee is added when the trip runs on a flatbed trailer.
	FlatbedTarpFee int64
	// WarehouseToCustomerBonus is added when the trip carries internal bulk cargo.
	WarehouseToCustomerBonus int64

	// SecondTripBonus/ThirdTripBonus pay the single bonus-flagged trip of a
	// day on which the driver delivered two, respectively three or more, trips.
	SecondTripBonus int64
	ThirdTripBonus  int64

	// Monthly trip-count bonuses, non-overlapping by construction.
	Bonus45To50Trips int64
	Bonus51To54Trips int64
	Bonus55PlusTrips int64

	// HolidayMultiplier scales the whole trip subtotal on holidays, typically > 1.
	HolidayMultiplier float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaxBracket is one tier of the progressive income tax table. Limit is the
// inclusive upper bound of taxable income for the tier; the top bracket has
// Limit 0 meaning unbounded. Tax is income×Rate − Deduction.
type TaxBracket struct {
	Limit     int64
	Rate      decimal.Decimal
	Deduction int64
}

// IncomeTaxSetting is the tenant-wide TNCN configuration: the bracket table,
// the flat personal and per-dependent deductions, and the mandatory insurance
// rates applied to base salary.
type IncomeTaxSetting struct {
	ID       string
	TenantID string
	Status   SettingStatus

	Brackets [TaxBracketCount]TaxBracket

	PersonalDeduction  int64
	DependentDeduction int64

	SocialInsuranceRate       decimal.Decimal
	HealthInsuranceRate       decimal.Decimal
	UnemploymentInsuranceRate decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdvancePayment is a cash advance handed to a driver mid-month. A payroll
// confirmation consumes it exactly once: IsDeducted flips true and the
// deducted month/year are stamped for audit. Already-deducted rows never
// enter a later payroll window.
type AdvancePayment struct {
	ID            string
	TenantID      string
	DriverID      string
	PaymentDate   time.Time
	Amount        int64
	IsDeducted    bool
	DeductedMonth *int
	DeductedYear  *int
	CreatedAt     time.Time
}

package payroll

import (
	"context"
	"time"
)

// SettingRepository defines data access methods for payroll settings.
// All methods include tenantID to prevent cross-tenant data access.
type SettingRepository interface {
	GetActiveSalarySetting(ctx context.Context, tenantID string) (DriverSalarySetting, error)
	GetActiveTaxSetting(ctx context.Context, tenantID string) (IncomeTaxSetting, error)

	// ActivateSalarySetting validates the setting, demotes the tenant's
	// current ACTIVE row and inserts the new one as ACTIVE, atomically.
	ActivateSalarySetting(ctx context.Context, setting DriverSalarySetting) (DriverSalarySetting, error)
	// ActivateTaxSetting is the income-tax counterpart of ActivateSalarySetting.
	ActivateTaxSetting(ctx context.Context, setting IncomeTaxSetting) (IncomeTaxSetting, error)
}

// AdvancePaymentRepository defines data access methods for cash advances.
type AdvancePaymentRepository interface {
	Create(ctx context.Context, advance AdvancePayment) (AdvancePayment, error)

	// SumUndeductedInWindow totals the driver's unconsumed advances dated
	// inside [from, to] without touching them. Preview mode.
	SumUndeductedInWindow(ctx context.Context, tenantID, driverID string, from, to time.Time) (int64, error)

	// ClaimInWindow consumes the same rows in a single atomic statement:
	// each is flipped to deducted and stamped with (month, year), and the
	// claimed total is returned. A second claim of an unchanged window
	// returns 0. Concurrent claims for one (driver, period) cannot both
	// count a row.
	ClaimInWindow(ctx context.Context, tenantID, driverID string, from, to time.Time, month, year int) (int64, error)
}

package driver

import "context"

// DriverRepository defines data access methods for drivers.
// All methods include tenantID to prevent cross-tenant data access.
type DriverRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Driver, error)
	ListActiveByTenant(ctx context.Context, tenantID string) ([]Driver, error)
}

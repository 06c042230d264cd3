package trip

import "context"

// TripRepository defines data access methods for trips.
// All methods include tenantID to prevent cross-tenant data access.
type TripRepository interface {
	// GetDeliveredByDriverPeriod returns the driver's trips whose DELIVERED
	// status transition falls inside the given month, ordered by delivery
	// time. Trips with no DELIVERED entry in the status log never appear.
	GetDeliveredByDriverPeriod(ctx context.Context, tenantID, driverID string, year, month int) ([]Trip, error)
}

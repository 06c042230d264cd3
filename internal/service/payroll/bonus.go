package payroll

import "github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"

// MonthlyTripBonus selects the trip-count bonus for a driver's month.
// Thresholds are checked highest-first and do not overlap.
func MonthlyTripBonus(tripCount int, setting payroll.DriverSalarySetting) int64 {
	switch {
	case tripCount >= 55:
		return setting.Bonus55PlusTrips
	case tripCount >= 51:
		return setting.Bonus51To54Trips
	case tripCount >= 45:
		return setting.Bonus45To50Trips
	default:
		return 0
	}
}

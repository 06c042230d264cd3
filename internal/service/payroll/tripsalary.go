package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/trip"
)

// ComputeTripSalary itemizes one trip's gross pay against the active tariff.
// tripCountToday and isBonusTrip come from the day-grouping pre-pass; exactly
// one of a driver's trips per day arrives with isBonusTrip=true.
func ComputeTripSalary(t trip.Trip, setting payroll.DriverSalarySetting, tripCountToday int, isBonusTrip bool, detect trip.Detectors) payroll.TripBreakdown {
	b := payroll.TripBreakdown{
		TripID:            t.ID,
		DistanceKM:        t.DistanceKM,
		PickupIsPort:      t.PickupIsPort,
		HolidayMultiplier: 1.0,
	}
	if t.DeliveredDate != nil {
		b.DeliveredDate = t.DeliveredDate.Format("2006-01-02")
	}

	// Port and warehouse tariffs are mutually exclusive, keyed by pickup origin.
	rates := setting.WarehouseRates
	if t.PickupIsPort {
		rates = setting.PortRates
	}
	b.DistancePay = rates[distanceTier(t.DistanceKM, setting.DistanceCuts)]

	// The gate fee follows the port table; warehouse trips never pay it.
	if t.PickupIsPort {
		b.PortGateFee = setting.PortGateFee
	}

	if t.Flatbed.Resolve(detect.Flatbed(t.Equipment)) {
		b.FlatbedFee = setting.FlatbedTarpFee
	}
	if t.InternalCargo.Resolve(detect.InternalCargo(t.CargoNote)) {
		b.WarehouseBonus = setting.WarehouseToCustomerBonus
	}

	if isBonusTrip {
		switch {
		case tripCountToday >= 3:
			b.DailyBonus = setting.ThirdTripBonus
		case tripCountToday == 2:
			b.DailyBonus = setting.SecondTripBonus
		}
	}

	subtotal := b.DistancePay + b.PortGateFee + b.FlatbedFee + b.WarehouseBonus + b.DailyBonus

	detectedHoliday := false
	if t.DeliveredDate != nil {
		detectedHoliday = detect.Holiday(*t.DeliveredDate)
	}
	if t.Holiday.Resolve(detectedHoliday) {
		b.HolidayMultiplier = setting.HolidayMultiplier
		// Truncated, not rounded.
		b.Total = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromFloat(setting.HolidayMultiplier)).
			Floor().
			IntPart()
	} else {
		b.Total = subtotal
	}

	return b
}

// distanceTier selects the smallest cut point the distance does not exceed.
// Comparisons are <=, so a distance exactly on a cut falls into the lower
// tier. Distances beyond every cut land in the catch-all tier.
func distanceTier(distanceKM float64, cuts [payroll.DistanceCutCount]float64) int {
	for i, cut := range cuts {
		if distanceKM <= cut {
			return i
		}
	}
	return payroll.PayoutTierCount - 1
}

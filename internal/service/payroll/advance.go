package payroll

import "time"

// PeriodWindow returns the inclusive advance-payment window for a payroll
// month: the 11th of the trip month through paymentDay of the following
// month. December wraps into January of the next year.
func PeriodWindow(year, month, paymentDay int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 11, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes month 13 to January of year+1.
	to = time.Date(year, time.Month(month+1), paymentDay, 0, 0, 0, 0, time.UTC)
	return from, to
}

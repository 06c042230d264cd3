package trip

// Assignment pairs a trip with the daily multi-trip bonus context derived from
// the driver's full set of trips for the month. Across all of a driver's trips
// on one calendar day exactly one trip is marked IsBonusTrip: the first one in
// input order. The selection is FIFO, never value-maximizing.
type Assignment struct {
	Trip Trip
	// TripCountToday is the number of the driver's delivered trips on the
	// trip's delivery date.
	TripCountToday int
	// IsBonusTrip marks the single trip per day eligible for the daily
	// multi-trip bonus.
	IsBonusTrip bool
}

// AssignDailyBonuses partitions trips by delivered date and flags the first
// trip of each day. Trips without a resolvable DeliveredDate are silently
// excluded from the result; payroll never sees them.
func AssignDailyBonuses(trips []Trip) []Assignment {
	countByDay := make(map[string]int)
	for _, t := range trips {
		if t.DeliveredDate == nil {
			continue
		}
		countByDay[t.DeliveredDate.Format("2006-01-02")]++
	}

	assignments := make([]Assignment, 0, len(trips))
	flagged := make(map[string]bool)
	for _, t := range trips {
		if t.DeliveredDate == nil {
			continue
		}
		day := t.DeliveredDate.Format("2006-01-02")
		a := Assignment{
			Trip:           t,
			TripCountToday: countByDay[day],
		}
		if !flagged[day] {
			a.IsBonusTrip = true
			flagged[day] = true
		}
		assignments = append(assignments, a)
	}
	return assignments
}

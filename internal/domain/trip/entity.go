package trip

import "time"

// Trip is one delivery assignment. Salary attaches to DeliveredDate, the date
// the trip's status transitioned to DELIVERED in the status log, never to the
// order's creation date. Trips whose DELIVERED transition is missing carry a
// nil DeliveredDate and are excluded from payroll entirely.
type Trip struct {
	ID       string
	TenantID string
	DriverID string
	// DistanceKM is the planned haul distance, ≥ 0.
	DistanceKM float64
	// PickupIsPort selects the port payout table and the port gate fee;
	// it is derived from the pickup site's type.
	PickupIsPort bool
	// Equipment is free text describing the trailer; the flatbed
	// autodetector matches against it.
	Equipment string
	// CargoNote is free text describing the load; the internal-cargo
	// autodetector matches against it.
	CargoNote string

	Flatbed       Flag
	InternalCargo Flag
	Holiday       Flag

	DeliveredDate *time.Time
	CreatedAt     time.Time
}

// Flag is a tri-state override: an explicit true/false set by dispatch, or
// Auto meaning "inherit from the autodetector".
type Flag int8

const (
	FlagAuto Flag = iota
	FlagOn
	FlagOff
)

// Resolve returns the flag's value, falling back to detected when Auto.
func (f Flag) Resolve(detected bool) bool {
	switch f {
	case FlagOn:
		return true
	case FlagOff:
		return false
	default:
		return detected
	}
}

// FlagFromPtr maps a nullable database boolean onto a Flag.
func FlagFromPtr(b *bool) Flag {
	switch {
	case b == nil:
		return FlagAuto
	case *b:
		return FlagOn
	default:
		return FlagOff
	}
}

// Ptr maps a Flag back onto a nullable database boolean.
func (f Flag) Ptr() *bool {
	switch f {
	case FlagOn:
		v := true
		return &v
	case FlagOff:
		v := false
		return &v
	default:
		return nil
	}
}

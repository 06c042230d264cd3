package trip

import (
	"strings"
	"time"
)

// Detectors bundles the autodetection strategies consulted when a trip flag
// is FlagAuto. They are injected so the fragile text heuristics can be swapped
// without touching the salary math.
type Detectors struct {
	Flatbed       func(equipment string) bool
	InternalCargo func(cargoNote string) bool
	Holiday       func(date time.Time) bool
}

// DefaultDetectors returns the production heuristics: trailer descriptions
// containing "sàn" are flatbeds, cargo notes containing "hàng xá" are internal
// bulk cargo, and holidays are weekends plus the fixed national holidays.
func DefaultDetectors() Detectors {
	return Detectors{
		Flatbed:       DetectFlatbed,
		InternalCargo: DetectInternalCargo,
		Holiday:       DetectHoliday,
	}
}

func DetectFlatbed(equipment string) bool {
	return strings.Contains(strings.ToLower(equipment), "sàn")
}

func DetectInternalCargo(cargoNote string) bool {
	return strings.Contains(strings.ToLower(cargoNote), "hàng xá")
}

// fixedHolidays are the solar-calendar Vietnamese public holidays, keyed "MM-DD".
var fixedHolidays = map[string]bool{
	"01-01": true, // Tết Dương lịch
	"04-30": true, // Giải phóng miền Nam
	"05-01": true, // Quốc tế Lao động
	"09-02": true, // Quốc khánh
}

func DetectHoliday(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return fixedHolidays[date.Format("01-02")]
}

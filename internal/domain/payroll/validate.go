package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vietcargo/fleetpay-backend-go/internal/pkg/validator"
)

// Validate checks a salary setting before activation. The calculators assume
// a well-formed table and never re-validate, so activation is the only gate.
func (s *DriverSalarySetting) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsStrictlyIncreasing(s.DistanceCuts[:]) {
		errs = append(errs, validator.ValidationError{Field: "distance_cuts", Message: "must be strictly increasing"})
	}
	if s.DistanceCuts[0] < 0 {
		errs = append(errs, validator.ValidationError{Field: "distance_cuts", Message: "must be non-negative"})
	}
	for i, rate := range s.PortRates {
		if rate < 0 {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("port_rates[%d]", i), Message: "must be non-negative"})
		}
	}
	for i, rate := range s.WarehouseRates {
		if rate < 0 {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("warehouse_rates[%d]", i), Message: "must be non-negative"})
		}
	}
	if s.PortGateFee < 0 {
		errs = append(errs, validator.ValidationError{Field: "port_gate_fee", Message: "must be non-negative"})
	}
	if s.FlatbedTarpFee < 0 {
		errs = append(errs, validator.ValidationError{Field: "flatbed_tarp_fee", Message: "must be non-negative"})
	}
	if s.WarehouseToCustomerBonus < 0 {
		errs = append(errs, validator.ValidationError{Field: "warehouse_to_customer_bonus", Message: "must be non-negative"})
	}
	if s.SecondTripBonus < 0 || s.ThirdTripBonus < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_trip_bonus", Message: "must be non-negative"})
	}
	if s.Bonus45To50Trips < 0 || s.Bonus51To54Trips < 0 || s.Bonus55PlusTrips < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_trip_bonus", Message: "must be non-negative"})
	}
	if s.HolidayMultiplier < 1 {
		errs = append(errs, validator.ValidationError{Field: "holiday_multiplier", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks a tax setting before activation: bracket limits strictly
// increasing with an unbounded (zero-limit) top bracket, rates in [0, 1], and
// a zero deduction on the first bracket.
func (s *IncomeTaxSetting) Validate() error {
	var errs validator.ValidationErrors

	for i := 1; i < TaxBracketCount-1; i++ {
		if s.Brackets[i].Limit <= s.Brackets[i-1].Limit {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("brackets[%d].limit", i), Message: "must exceed the previous bracket limit"})
		}
	}
	if s.Brackets[TaxBracketCount-1].Limit != 0 {
		errs = append(errs, validator.ValidationError{Field: "brackets[6].limit", Message: "top bracket must be unbounded (limit 0)"})
	}
	if s.Brackets[0].Deduction != 0 {
		errs = append(errs, validator.ValidationError{Field: "brackets[0].deduction", Message: "first bracket has no deduction"})
	}
	one := decimal.NewFromInt(1)
	for i, b := range s.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("brackets[%d].rate", i), Message: "must be within [0, 1]"})
		}
		if b.Deduction < 0 {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("brackets[%d].deduction", i), Message: "must be non-negative"})
		}
	}

	if s.PersonalDeduction < 0 {
		errs = append(errs, validator.ValidationError{Field: "personal_deduction", Message: "must be non-negative"})
	}
	if s.DependentDeduction < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependent_deduction", Message: "must be non-negative"})
	}
	for _, rate := range []struct {
		name string
		rate float64
	}{
		{"social_insurance_rate", s.SocialInsuranceRate.InexactFloat64()},
		{"health_insurance_rate", s.HealthInsuranceRate.InexactFloat64()},
		{"unemployment_insurance_rate", s.UnemploymentInsuranceRate.InexactFloat64()},
	} {
		if !validator.IsRate(rate.rate) {
			errs = append(errs, validator.ValidationError{Field: rate.name, Message: "must be within [0, 1]"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

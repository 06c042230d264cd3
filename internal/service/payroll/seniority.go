package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerYear = 24 * 365.25

var seniorityRate = decimal.NewFromFloat(0.03)

// ComputeSeniorityBonus pays 3% of base salary per full year of service.
// The first year never qualifies: exactly one full year still yields 0.
func ComputeSeniorityBonus(hireDate, reportDate time.Time, baseSalary int64) int64 {
	years := int64(reportDate.Sub(hireDate).Hours() / hoursPerYear)
	if years <= 1 {
		return 0
	}
	return decimal.NewFromInt(baseSalary).
		Mul(seniorityRate).
		Mul(decimal.NewFromInt(years)).
		Floor().
		IntPart()
}

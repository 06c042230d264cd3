package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
)

// ComputeIncomeTax applies the progressive TNCN table to taxable income.
// Brackets are evaluated in ascending order and the first bracket whose
// limit covers the income wins; income beyond every bounded bracket falls
// into the unbounded top bracket. Tax is income×rate − deduction, rounded
// to the nearest VND. Callers do not always clamp negative taxable income,
// so any input ≤ 0 yields 0.
func ComputeIncomeTax(taxableIncome int64, setting payroll.IncomeTaxSetting) int64 {
	if taxableIncome <= 0 {
		return 0
	}

	bracket := setting.Brackets[payroll.TaxBracketCount-1]
	for _, b := range setting.Brackets[:payroll.TaxBracketCount-1] {
		if taxableIncome <= b.Limit {
			bracket = b
			break
		}
	}

	tax := decimal.NewFromInt(taxableIncome).
		Mul(bracket.Rate).
		Sub(decimal.NewFromInt(bracket.Deduction))
	return tax.Round(0).IntPart()
}

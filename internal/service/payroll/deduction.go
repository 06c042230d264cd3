package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
)

// ComputeDeductions folds gross income, mandatory insurance, income tax and
// consumed advances into net salary.
//
// Insurance is computed on base salary only; trip pay and bonuses never
// enter the insurance base. A nil taxSetting is the "no tax configured yet"
// degrade path, not an error: every deduction field stays zero and net
// salary equals gross income.
func ComputeDeductions(dependentCount int, baseSalary, tripSalarySum, monthlyBonus, seniorityBonus, advance int64, taxSetting *payroll.IncomeTaxSetting) payroll.DeductionBreakdown {
	gross := baseSalary + tripSalarySum + monthlyBonus + seniorityBonus
	b := payroll.DeductionBreakdown{
		GrossIncome: gross,
		NetSalary:   gross,
	}
	if taxSetting == nil {
		return b
	}

	base := decimal.NewFromInt(baseSalary)
	b.SocialInsurance = base.Mul(taxSetting.SocialInsuranceRate).Round(0).IntPart()
	b.HealthInsurance = base.Mul(taxSetting.HealthInsuranceRate).Round(0).IntPart()
	b.UnemploymentInsurance = base.Mul(taxSetting.UnemploymentInsuranceRate).Round(0).IntPart()
	b.TotalInsurance = b.SocialInsurance + b.HealthInsurance + b.UnemploymentInsurance

	b.PersonalDeduction = taxSetting.PersonalDeduction
	b.DependentDeduction = taxSetting.DependentDeduction * int64(dependentCount)

	b.TaxableIncome = gross - b.TotalInsurance - b.PersonalDeduction - b.DependentDeduction
	b.IncomeTax = ComputeIncomeTax(b.TaxableIncome, *taxSetting)

	b.AdvanceDeduction = advance
	b.NetSalary = gross - b.TotalInsurance - b.IncomeTax - advance
	return b
}

package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vietcargo/fleetpay-backend-go/internal/fixtures"
)

func TestComputeDeductions_TaxableBelowZero(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()

	// A driver on 8M base with one dependent: one warehouse trip of 600k plus
	// a 960k seniority bonus still leaves taxable income deep below zero.
	b := ComputeDeductions(1, 8_000_000, 600_000, 0, 960_000, 500_000, &setting)

	assert.Equal(t, int64(9_560_000), b.GrossIncome)
	assert.Equal(t, int64(640_000), b.SocialInsurance)
	assert.Equal(t, int64(120_000), b.HealthInsurance)
	assert.Equal(t, int64(80_000), b.UnemploymentInsurance)
	assert.Equal(t, int64(840_000), b.TotalInsurance)
	assert.Equal(t, int64(11_000_000), b.PersonalDeduction)
	assert.Equal(t, int64(4_400_000), b.DependentDeduction)
	assert.Equal(t, int64(9_560_000-840_000-11_000_000-4_400_000), b.TaxableIncome)
	assert.Negative(t, b.TaxableIncome)
	assert.EqualValues(t, 0, b.IncomeTax)
	assert.Equal(t, int64(500_000), b.AdvanceDeduction)
	assert.Equal(t, int64(9_560_000-840_000-500_000), b.NetSalary)
}

func TestComputeDeductions_PositiveTax(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()

	b := ComputeDeductions(0, 30_000_000, 0, 0, 0, 0, &setting)

	assert.Equal(t, int64(30_000_000), b.GrossIncome)
	assert.Equal(t, int64(3_150_000), b.TotalInsurance)
	assert.Equal(t, int64(15_850_000), b.TaxableIncome)
	// 15.85M lands in bracket 3: 15% − 750k.
	assert.Equal(t, int64(1_627_500), b.IncomeTax)
	assert.Equal(t, int64(25_222_500), b.NetSalary)
}

func TestComputeDeductions_InsuranceOnBaseSalaryOnly(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()

	// Trip pay and bonuses inflate gross but never the insurance base.
	small := ComputeDeductions(0, 10_000_000, 0, 0, 0, 0, &setting)
	large := ComputeDeductions(0, 10_000_000, 40_000_000, 1_200_000, 900_000, 0, &setting)

	assert.Equal(t, small.TotalInsurance, large.TotalInsurance)
	assert.Equal(t, int64(1_050_000), large.TotalInsurance)
}

func TestComputeDeductions_NoTaxSettingConfigured(t *testing.T) {
	t.Parallel()

	// The degrade path: the month is paid gross, nothing is deducted.
	b := ComputeDeductions(2, 8_000_000, 3_500_000, 500_000, 480_000, 1_000_000, nil)

	assert.Equal(t, int64(12_480_000), b.GrossIncome)
	assert.EqualValues(t, 0, b.TotalInsurance)
	assert.EqualValues(t, 0, b.IncomeTax)
	assert.EqualValues(t, 0, b.AdvanceDeduction)
	assert.Equal(t, b.GrossIncome, b.NetSalary)
}

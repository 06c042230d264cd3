package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietcargo/fleetpay-backend-go/internal/fixtures"
	"github.com/vietcargo/fleetpay-backend-go/internal/pkg/validator"
)

func TestDriverSalarySettingValidate_Defaults(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultDriverSalarySetting()
	assert.NoError(t, setting.Validate())
}

func TestDriverSalarySettingValidate_NonMonotonicCuts(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultDriverSalarySetting()
	setting.DistanceCuts[5] = setting.DistanceCuts[4]

	err := setting.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "distance_cuts")
}

func TestDriverSalarySettingValidate_NegativeRate(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultDriverSalarySetting()
	setting.WarehouseRates[3] = -1

	assert.Error(t, setting.Validate())
}

func TestDriverSalarySettingValidate_MultiplierBelowOne(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultDriverSalarySetting()
	setting.HolidayMultiplier = 0.9

	assert.Error(t, setting.Validate())
}

func TestIncomeTaxSettingValidate_Defaults(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()
	assert.NoError(t, setting.Validate())
}

func TestIncomeTaxSettingValidate_NonMonotonicLimits(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()
	setting.Brackets[2].Limit = setting.Brackets[1].Limit

	assert.Error(t, setting.Validate())
}

func TestIncomeTaxSettingValidate_BoundedTopBracket(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()
	setting.Brackets[6].Limit = 200_000_000

	assert.Error(t, setting.Validate())
}

func TestIncomeTaxSettingValidate_FirstBracketDeduction(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()
	setting.Brackets[0].Deduction = 100_000

	assert.Error(t, setting.Validate())
}

func TestIncomeTaxSettingValidate_RateOutOfRange(t *testing.T) {
	t.Parallel()
	setting := fixtures.DefaultIncomeTaxSetting()
	setting.Brackets[3].Rate = decimal.NewFromFloat(1.2)

	assert.Error(t, setting.Validate())
}

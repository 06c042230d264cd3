package payroll

import "errors"

var (
	ErrSalarySettingNotFound = errors.New("no active driver salary setting for tenant")
	ErrTaxSettingNotFound    = errors.New("no active income tax setting for tenant")
	ErrAdvanceNotFound       = errors.New("advance payment not found")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
)

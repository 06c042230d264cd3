package payroll

// ========== REPORT DTOs ==========

// TripBreakdown itemizes one trip's gross pay.
type TripBreakdown struct {
	TripID        string  `json:"trip_id"`
	DeliveredDate string  `json:"delivered_date"`
	DistanceKM    float64 `json:"distance_km"`
	PickupIsPort  bool    `json:"pickup_is_port"`

	DistancePay    int64 `json:"distance_pay"`
	PortGateFee    int64 `json:"port_gate_fee"`
	FlatbedFee     int64 `json:"flatbed_fee"`
	WarehouseBonus int64 `json:"warehouse_bonus"`
	DailyBonus     int64 `json:"daily_bonus"`
	// HolidayMultiplier is the multiplier actually applied: the configured
	// value on holidays, 1.0 otherwise.
	HolidayMultiplier float64 `json:"holiday_multiplier"`
	Total             int64   `json:"total"`
}

// DeductionBreakdown itemizes the path from gross income to net salary.
type DeductionBreakdown struct {
	GrossIncome int64 `json:"gross_income"`

	SocialInsurance       int64 `json:"social_insurance"`
	HealthInsurance       int64 `json:"health_insurance"`
	UnemploymentInsurance int64 `json:"unemployment_insurance"`
	TotalInsurance        int64 `json:"total_insurance"`

	PersonalDeduction  int64 `json:"personal_deduction"`
	DependentDeduction int64 `json:"dependent_deduction"`
	// TaxableIncome may be negative; tax is clamped to zero then.
	TaxableIncome int64 `json:"taxable_income"`
	IncomeTax     int64 `json:"income_tax"`

	AdvanceDeduction int64 `json:"advance_deduction"`
	NetSalary        int64 `json:"net_salary"`
}

// DriverPayrollReport is one driver's full monthly payroll result.
type DriverPayrollReport struct {
	TenantID   string `json:"tenant_id"`
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	BaseSalary     int64           `json:"base_salary"`
	Trips          []TripBreakdown `json:"trips"`
	TripCount      int             `json:"trip_count"`
	TripSalarySum  int64           `json:"trip_salary_sum"`
	MonthlyBonus   int64           `json:"monthly_bonus"`
	SeniorityBonus int64           `json:"seniority_bonus"`

	Deductions DeductionBreakdown `json:"deductions"`

	// Confirmed reports whether this run consumed the driver's advances.
	// Preview runs leave advance rows untouched.
	Confirmed bool `json:"confirmed"`
}

package driver

import "time"

type Driver struct {
	ID       string
	TenantID string
	FullName string
	// HireDate is immutable after creation and drives the seniority bonus.
	HireDate time.Time
	// BaseSalary is the monthly base pay in VND, set by HR.
	BaseSalary int64
	// DependentCount feeds the per-dependent income tax deduction.
	DependentCount int
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

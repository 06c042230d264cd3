package payroll

import "context"

// ReportService produces monthly payroll reports for drivers.
type ReportService interface {
	// GenerateMonthlyReport computes one driver's payroll for the month the
	// trips were delivered in. confirm=false is a pure preview; confirm=true
	// additionally consumes the driver's advance payments for the period,
	// which is a one-shot operation.
	GenerateMonthlyReport(ctx context.Context, tenantID, driverID string, year, month int, confirm bool) (DriverPayrollReport, error)

	// GenerateMonthlyReports runs GenerateMonthlyReport over every active
	// driver of the tenant.
	GenerateMonthlyReports(ctx context.Context, tenantID string, year, month int, confirm bool) ([]DriverPayrollReport, error)
}

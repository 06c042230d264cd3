package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vietcargo/fleetpay-backend-go/internal/domain/driver"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/trip"
)

type ReportServiceImpl struct {
	driverRepo  driver.DriverRepository
	tripRepo    trip.TripRepository
	settingRepo payroll.SettingRepository
	advanceRepo payroll.AdvancePaymentRepository
	detectors   trip.Detectors
	paymentDay  int
	logger      *slog.Logger
}

func NewReportService(
	driverRepo driver.DriverRepository,
	tripRepo trip.TripRepository,
	settingRepo payroll.SettingRepository,
	advanceRepo payroll.AdvancePaymentRepository,
	detectors trip.Detectors,
	paymentDay int,
	logger *slog.Logger,
) payroll.ReportService {
	return &ReportServiceImpl{
		driverRepo:  driverRepo,
		tripRepo:    tripRepo,
		settingRepo: settingRepo,
		advanceRepo: advanceRepo,
		detectors:   detectors,
		paymentDay:  paymentDay,
		logger:      logger,
	}
}

func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, tenantID, driverID string, year, month int, confirm bool) (payroll.DriverPayrollReport, error) {
	if month < 1 || month > 12 || year < 1 {
		return payroll.DriverPayrollReport{}, payroll.ErrInvalidPeriod
	}

	drv, err := s.driverRepo.GetByID(ctx, driverID, tenantID)
	if err != nil {
		return payroll.DriverPayrollReport{}, fmt.Errorf("failed to get driver: %w", err)
	}

	salarySetting, err := s.settingRepo.GetActiveSalarySetting(ctx, tenantID)
	if err != nil {
		return payroll.DriverPayrollReport{}, err
	}

	// A missing tax setting is the documented degrade path: the month is
	// paid gross with every deduction zeroed, and advances stay unclaimed.
	var taxSetting *payroll.IncomeTaxSetting
	active, err := s.settingRepo.GetActiveTaxSetting(ctx, tenantID)
	switch {
	case err == nil:
		taxSetting = &active
	case errors.Is(err, payroll.ErrTaxSettingNotFound):
	default:
		return payroll.DriverPayrollReport{}, err
	}

	trips, err := s.tripRepo.GetDeliveredByDriverPeriod(ctx, tenantID, driverID, year, month)
	if err != nil {
		return payroll.DriverPayrollReport{}, fmt.Errorf("failed to get delivered trips: %w", err)
	}

	report := payroll.DriverPayrollReport{
		TenantID:   tenantID,
		DriverID:   drv.ID,
		DriverName: drv.FullName,
		Year:       year,
		Month:      month,
		BaseSalary: drv.BaseSalary,
	}

	assignments := trip.AssignDailyBonuses(trips)
	for _, a := range assignments {
		breakdown := ComputeTripSalary(a.Trip, salarySetting, a.TripCountToday, a.IsBonusTrip, s.detectors)
		report.Trips = append(report.Trips, breakdown)
		report.TripSalarySum += breakdown.Total
	}
	report.TripCount = len(assignments)

	report.MonthlyBonus = MonthlyTripBonus(report.TripCount, salarySetting)

	// Seniority is measured against the last day of the report month.
	reportDate := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC)
	report.SeniorityBonus = ComputeSeniorityBonus(drv.HireDate, reportDate, drv.BaseSalary)

	var advance int64
	if taxSetting != nil {
		from, to := PeriodWindow(year, month, s.paymentDay)
		if confirm {
			advance, err = s.advanceRepo.ClaimInWindow(ctx, tenantID, driverID, from, to, month, year)
		} else {
			advance, err = s.advanceRepo.SumUndeductedInWindow(ctx, tenantID, driverID, from, to)
		}
		if err != nil {
			return payroll.DriverPayrollReport{}, fmt.Errorf("failed to aggregate advances: %w", err)
		}
	}

	report.Deductions = ComputeDeductions(drv.DependentCount, drv.BaseSalary, report.TripSalarySum, report.MonthlyBonus, report.SeniorityBonus, advance, taxSetting)
	report.Confirmed = confirm && taxSetting != nil

	if report.Confirmed {
		s.logger.InfoContext(ctx, "payroll confirmed",
			slog.String("tenant_id", tenantID),
			slog.String("driver_id", driverID),
			slog.Int("year", year),
			slog.Int("month", month),
			slog.Int64("advance_claimed", advance),
			slog.Int64("net_salary", report.Deductions.NetSalary),
		)
	}

	return report, nil
}

func (s *ReportServiceImpl) GenerateMonthlyReports(ctx context.Context, tenantID string, year, month int, confirm bool) ([]payroll.DriverPayrollReport, error) {
	drivers, err := s.driverRepo.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	reports := make([]payroll.DriverPayrollReport, 0, len(drivers))
	for _, d := range drivers {
		report, err := s.GenerateMonthlyReport(ctx, tenantID, d.ID, year, month, confirm)
		if err != nil {
			return nil, fmt.Errorf("failed to generate report for driver %s: %w", d.ID, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vietcargo/fleetpay-backend-go/internal/config"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/payroll"
	"github.com/vietcargo/fleetpay-backend-go/internal/domain/trip"
	"github.com/vietcargo/fleetpay-backend-go/internal/pkg/database"
	"github.com/vietcargo/fleetpay-backend-go/internal/repository/postgresql"
	payrollService "github.com/vietcargo/fleetpay-backend-go/internal/service/payroll"
)

func main() {
	var (
		tenantID = flag.String("tenant", "", "tenant ID (required)")
		driverID = flag.String("driver", "", "driver ID; all active drivers when empty")
		year     = flag.Int("year", 0, "payroll year (required)")
		month    = flag.Int("month", 0, "payroll month 1-12 (required)")
		confirm  = flag.Bool("confirm", false, "consume advance payments (one-shot); default is preview")
	)
	flag.Parse()

	if *tenantID == "" || *year == 0 || *month == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "fleetpay-payrollctl"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	driverRepo := postgresql.NewDriverRepository(db)
	tripRepo := postgresql.NewTripRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	advanceRepo := postgresql.NewAdvancePaymentRepository(db)

	reportService := payrollService.NewReportService(
		driverRepo,
		tripRepo,
		settingRepo,
		advanceRepo,
		trip.DefaultDetectors(),
		cfg.Payroll.PaymentDay,
		logger,
	)

	ctx := context.Background()

	var reports []payroll.DriverPayrollReport
	if *driverID != "" {
		report, err := reportService.GenerateMonthlyReport(ctx, *tenantID, *driverID, *year, *month, *confirm)
		if err != nil {
			logger.Error("failed to generate report", slog.Any("error", err))
			os.Exit(1)
		}
		reports = append(reports, report)
	} else {
		reports, err = reportService.GenerateMonthlyReports(ctx, *tenantID, *year, *month, *confirm)
		if err != nil {
			logger.Error("failed to generate reports", slog.Any("error", err))
			os.Exit(1)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		logger.Error("failed to encode reports", slog.Any("error", err))
		os.Exit(1)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

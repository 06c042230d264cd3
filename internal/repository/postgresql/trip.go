package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/vietcargo/fleetpay-backend-go/internal/domain/trip"
	"github.com/vietcargo/fleetpay-backend-go/internal/pkg/database"
)

type tripRepository struct {
	db *database.DB
}

func NewTripRepository(db *database.DB) trip.TripRepository {
	return &tripRepository{db: db}
}

// GetDeliveredByDriverPeriod resolves each trip's delivery date from its
// DELIVERED status-log entry; the order's creation date plays no role in
// payroll. The INNER JOIN drops trips with no DELIVERED transition, so
// undelivered trips never reach the calculator, and DISTINCT ON keeps the
// earliest transition when the log holds more than one.
func (r *tripRepository) GetDeliveredByDriverPeriod(ctx context.Context, tenantID, driverID string, year, month int) ([]trip.Trip, error) {
	q := GetQuerier(ctx, r.db)

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	query := `
		SELECT t.id, t.tenant_id, t.driver_id, t.distance_km,
			   (s.site_type = 'PORT') AS pickup_is_port,
			   COALESCE(t.equipment, ''), COALESCE(t.cargo_note, ''),
			   t.is_flatbed, t.is_internal_cargo, t.is_holiday,
			   l.delivered_date, t.created_at
		FROM trips t
		JOIN sites s ON s.id = t.pickup_site_id
		JOIN (
			SELECT DISTINCT ON (trip_id) trip_id, changed_at::date AS delivered_date
			FROM trip_status_logs
			WHERE status = 'DELIVERED'
			ORDER BY trip_id, changed_at
		) l ON l.trip_id = t.id
		WHERE t.tenant_id = $1
		  AND t.driver_id = $2
		  AND l.delivered_date >= $3
		  AND l.delivered_date < $4
		ORDER BY l.delivered_date, t.created_at
	`

	rows, err := q.Query(ctx, query, tenantID, driverID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivered trips: %w", err)
	}
	defer rows.Close()

	var trips []trip.Trip
	for rows.Next() {
		var (
			t                                trip.Trip
			isFlatbed, isInternal, isHoliday *bool
			deliveredDate                    time.Time
		)
		if err := rows.Scan(
			&t.ID, &t.TenantID, &t.DriverID, &t.DistanceKM,
			&t.PickupIsPort,
			&t.Equipment, &t.CargoNote,
			&isFlatbed, &isInternal, &isHoliday,
			&deliveredDate, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		t.Flatbed = trip.FlagFromPtr(isFlatbed)
		t.InternalCargo = trip.FlagFromPtr(isInternal)
		t.Holiday = trip.FlagFromPtr(isHoliday)
		t.DeliveredDate = &deliveredDate
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

package repository

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type CalendarRepository struct{}

func NewCalendarRepository() shared.CalendarRepository {
	return &CalendarRepository{}
}

// ReserveDates upserts one row per stay date. The conditional update only
// claims rows still marked available, so the returned count falls short of
// len(dates) whenever a concurrent booking or a host block got there first.
// Callers compare the count and roll the transaction back on a shortfall.
func (r *CalendarRepository) ReserveDates(ctx context.Context, dbtx db.DBTX, propertyID, bookingID uuid.UUID, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	tag, err := dbtx.Exec(ctx, `
		INSERT INTO booking_calendar (property_id, stay_date, status, booking_id)
		SELECT $1, d::date, 'booked', $2 FROM unnest($3::date[]) AS d
		ON CONFLICT (property_id, stay_date) DO UPDATE
			SET status = 'booked', booking_id = EXCLUDED.booking_id, updated_at = now()
			WHERE booking_calendar.status = 'available'`,
		propertyID, bookingID, dates,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reserve calendar dates", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CalendarRepository) UnavailableDates(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, from, until time.Time) ([]time.Time, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT stay_date FROM booking_calendar
		WHERE property_id = $1
		  AND stay_date >= $2 AND stay_date < $3
		  AND status <> 'available'
		ORDER BY stay_date`,
		propertyID, from, until,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query calendar", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar row", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read calendar rows", err)
	}
	return dates, nil
}

// ReleaseBooking flips a cancelled booking's dates back to available. Rows
// are kept, not deleted, so the calendar stays dense for range queries.
func (r *CalendarRepository) ReleaseBooking(ctx context.Context, dbtx db.DBTX, propertyID, bookingID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE booking_calendar
		SET status = 'available', booking_id = NULL, updated_at = now()
		WHERE property_id = $1 AND booking_id = $2`,
		propertyID, bookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release calendar dates", err)
	}
	return nil
}

func (r *CalendarRepository) BlockDates(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	tag, err := dbtx.Exec(ctx, `
		INSERT INTO booking_calendar (property_id, stay_date, status)
		SELECT $1, d::date, 'blocked' FROM unnest($2::date[]) AS d
		ON CONFLICT (property_id, stay_date) DO UPDATE
			SET status = 'blocked', updated_at = now()
			WHERE booking_calendar.status = 'available'`,
		propertyID, dates,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to block calendar dates", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CalendarRepository) UnblockDates(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}
	_, err := dbtx.Exec(ctx, `
		UPDATE booking_calendar
		SET status = 'available', updated_at = now()
		WHERE property_id = $1 AND stay_date = ANY($2::date[]) AND status = 'blocked'`,
		propertyID, dates,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to unblock calendar dates", err)
	}
	return nil
}

package readstore

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityStore interface {
	UnavailableDates(ctx context.Context, propertyID uuid.UUID, from, until time.Time) (*queries.AvailabilityView, error)
}

type AvailabilityReadStore struct {
	dbtx db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{dbtx: dbtx}
}

// UnavailableDates returns booked and blocked dates in [from, until).
// Dates absent from the calendar table are available.
func (r *AvailabilityReadStore) UnavailableDates(ctx context.Context, propertyID uuid.UUID, from, until time.Time) (*queries.AvailabilityView, error) {
	rows, err := r.dbtx.Query(ctx, `
		SELECT stay_date, status FROM booking_calendar
		WHERE property_id = $1
		  AND stay_date >= $2 AND stay_date < $3
		  AND status <> 'available'
		ORDER BY stay_date`,
		propertyID, from, until,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}
	defer rows.Close()

	view := &queries.AvailabilityView{
		PropertyID:       propertyID,
		From:             from,
		Until:            until,
		UnavailableDates: make([]queries.UnavailableDate, 0),
	}
	for rows.Next() {
		var entry queries.UnavailableDate
		if err := rows.Scan(&entry.Date, &entry.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		view.UnavailableDates = append(view.UnavailableDates, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rows", err)
	}
	return view, nil
}

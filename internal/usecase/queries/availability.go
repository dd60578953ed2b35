package queries

import (
	"context"
	"log/slog"
	"time"

	"unistay/internal/infra"
	"unistay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAvailabilityWindow = errs.New("invalid availability window")
	ErrAvailabilityWindowTooWide = errs.New("availability window exceeds maximum")
)

// Calendars are only materialized about a year ahead; wider windows would
// mostly return empty space.
const maxAvailabilityWindowDays = 366

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, propertyID uuid.UUID, from, until time.Time) (*AvailabilityView, error)
}

type AvailabilityReadStore interface {
	UnavailableDates(ctx context.Context, propertyID uuid.UUID, from, until time.Time) (*AvailabilityView, error)
}

// AvailabilityCache is a read-through cache. A nil view with nil error
// means miss; cache failures degrade to the database.
type AvailabilityCache interface {
	Get(ctx context.Context, propertyID uuid.UUID, from, until time.Time) (*AvailabilityView, error)
	Set(ctx context.Context, view *AvailabilityView) error
}

type availabilityQueriesImpl struct {
	readStore     AvailabilityReadStore
	propertyStore PropertyReadStore
	cache         AvailabilityCache
}

func NewAvailabilityQueries(readStore AvailabilityReadStore, propertyStore PropertyReadStore, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore:     readStore,
		propertyStore: propertyStore,
		cache:         cache,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, propertyID uuid.UUID, from, until time.Time) (*AvailabilityView, error) {
	from = truncateToDay(from)
	until = truncateToDay(until)
	if !from.Before(until) {
		return nil, ErrInvalidAvailabilityWindow
	}
	if until.Sub(from) > maxAvailabilityWindowDays*24*time.Hour {
		return nil, ErrAvailabilityWindowTooWide
	}

	if _, err := q.propertyStore.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if cached, err := q.cache.Get(ctx, propertyID, from, until); err != nil {
		slog.Warn("availability cache read failed", "property_id", propertyID.String(), "error", err.Error())
	} else if cached != nil {
		return cached, nil
	}

	view, err := q.readStore.UnavailableDates(ctx, propertyID, from, until)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, view); err != nil {
		slog.Warn("availability cache write failed", "property_id", propertyID.String(), "error", err.Error())
	}

	return view, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"unistay/internal/domain/booking"
	"unistay/internal/infra"
	"unistay/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityStore struct {
	view  *queries.AvailabilityView
	calls int
}

func (s *stubAvailabilityStore) UnavailableDates(_ context.Context, _ uuid.UUID, _, _ time.Time) (*queries.AvailabilityView, error) {
	s.calls++
	return s.view, nil
}

type stubPropertyStore struct {
	exists bool
}

func (s *stubPropertyStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.PropertyView, error) {
	if !s.exists {
		return nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &queries.PropertyView{}, nil
}

func (s *stubPropertyStore) SearchFirstPage(_ context.Context, _ queries.PropertyFilter, _ int32) ([]*queries.PropertyListItem, error) {
	panic("not stubbed")
}

func (s *stubPropertyStore) SearchKeyset(_ context.Context, _ queries.PropertyFilter, _ time.Time, _ uuid.UUID, _ int32) ([]*queries.PropertyListItem, error) {
	panic("not stubbed")
}

func (s *stubPropertyStore) FindByHost(_ context.Context, _ uuid.UUID) ([]*queries.PropertyListItem, error) {
	panic("not stubbed")
}

type stubCache struct {
	stored *queries.AvailabilityView
	getErr error
}

func (c *stubCache) Get(_ context.Context, _ uuid.UUID, _, _ time.Time) (*queries.AvailabilityView, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *stubCache) Set(_ context.Context, view *queries.AvailabilityView) error {
	c.stored = view
	return nil
}

func TestGetAvailability(t *testing.T) {
	propertyID := uuid.New()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	view := &queries.AvailabilityView{
		PropertyID: propertyID,
		From:       from,
		Until:      until,
		UnavailableDates: []queries.UnavailableDate{
			{Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), Status: booking.DateBooked},
			{Date: time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC), Status: booking.DateBlocked},
		},
	}

	t.Run("miss reads the database and fills the cache", func(t *testing.T) {
		store := &stubAvailabilityStore{view: view}
		cache := &stubCache{}
		q := queries.NewAvailabilityQueries(store, &stubPropertyStore{exists: true}, cache)

		got, err := q.GetAvailability(context.Background(), propertyID, from, until)
		require.NoError(t, err)
		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("availability view mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, store.calls)
		assert.NotNil(t, cache.stored)
	})

	t.Run("hit skips the database", func(t *testing.T) {
		store := &stubAvailabilityStore{view: view}
		cache := &stubCache{stored: view}
		q := queries.NewAvailabilityQueries(store, &stubPropertyStore{exists: true}, cache)

		got, err := q.GetAvailability(context.Background(), propertyID, from, until)
		require.NoError(t, err)
		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("availability view mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 0, store.calls)
	})

	t.Run("cache failure degrades to the database", func(t *testing.T) {
		store := &stubAvailabilityStore{view: view}
		cache := &stubCache{getErr: errors.New("redis down")}
		q := queries.NewAvailabilityQueries(store, &stubPropertyStore{exists: true}, cache)

		got, err := q.GetAvailability(context.Background(), propertyID, from, until)
		require.NoError(t, err)
		assert.Equal(t, 1, store.calls)
		assert.NotNil(t, got)
	})

	t.Run("unknown property", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&stubAvailabilityStore{view: view}, &stubPropertyStore{}, &stubCache{})

		_, err := q.GetAvailability(context.Background(), propertyID, from, until)
		assert.ErrorIs(t, err, queries.ErrPropertyNotFound)
	})

	t.Run("window validation", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&stubAvailabilityStore{view: view}, &stubPropertyStore{exists: true}, &stubCache{})

		_, err := q.GetAvailability(context.Background(), propertyID, until, from)
		assert.ErrorIs(t, err, queries.ErrInvalidAvailabilityWindow)

		_, err = q.GetAvailability(context.Background(), propertyID, from, from.AddDate(0, 0, 400))
		assert.ErrorIs(t, err, queries.ErrAvailabilityWindowTooWide)
	})
}

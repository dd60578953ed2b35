//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationStore struct {
	firstPage []*queries.NotificationView
	keyset    []*queries.NotificationView

	firstPageCalls int
	keysetCalls    int
	gotLimit       int32
	gotAfterTime   time.Time
	gotAfterID     uuid.UUID
}

func (s *stubNotificationStore) FindByUserFirstPage(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	s.firstPageCalls++
	s.gotLimit = limit
	return s.firstPage, nil
}

func (s *stubNotificationStore) FindByUserKeyset(_ context.Context, _ uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	s.keysetCalls++
	s.gotLimit = limit
	s.gotAfterTime = lastCreatedAt
	s.gotAfterID = lastID
	return s.keyset, nil
}

func notificationViews(n int) []*queries.NotificationView {
	items := make([]*queries.NotificationView, 0, n)
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		items = append(items, &queries.NotificationView{
			ID:        uuid.New(),
			Kind:      "booking_created",
			Payload:   []byte(`{}`),
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return items
}

func TestListNotifications(t *testing.T) {
	userID := uuid.New()

	t.Run("first page without cursor", func(t *testing.T) {
		store := &stubNotificationStore{firstPage: notificationViews(2)}
		q := queries.NewNotificationQueries(store)

		list, err := q.ListNotifications(context.Background(), userID, 10, "")
		require.NoError(t, err)
		assert.Equal(t, 1, store.firstPageCalls)
		assert.Equal(t, int32(10), store.gotLimit)
		assert.Len(t, list.Items, 2)
		assert.Empty(t, list.NextCursor, "partial page has no next cursor")
	})

	t.Run("full page yields a cursor for the next one", func(t *testing.T) {
		store := &stubNotificationStore{firstPage: notificationViews(3)}
		q := queries.NewNotificationQueries(store)

		list, err := q.ListNotifications(context.Background(), userID, 3, "")
		require.NoError(t, err)
		require.NotEmpty(t, list.NextCursor)

		last := list.Items[len(list.Items)-1]
		gotTime, gotID, err := queries.DecodeAfterCursor(list.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, last.ID, gotID)
		assert.True(t, last.CreatedAt.Equal(gotTime))
	})

	t.Run("cursor routes to the keyset query", func(t *testing.T) {
		store := &stubNotificationStore{keyset: notificationViews(1)}
		q := queries.NewNotificationQueries(store)

		afterTime := time.Date(2026, 8, 19, 8, 0, 0, 0, time.UTC)
		afterID := uuid.New()
		cursor := queries.EncodeAfterCursor(afterTime, afterID)

		list, err := q.ListNotifications(context.Background(), userID, 5, cursor)
		require.NoError(t, err)
		assert.Equal(t, 1, store.keysetCalls)
		assert.Equal(t, 0, store.firstPageCalls)
		assert.True(t, afterTime.Equal(store.gotAfterTime))
		assert.Equal(t, afterID, store.gotAfterID)
		assert.Len(t, list.Items, 1)
	})

	t.Run("garbage cursor is rejected", func(t *testing.T) {
		store := &stubNotificationStore{}
		q := queries.NewNotificationQueries(store)

		_, err := q.ListNotifications(context.Background(), userID, 5, "not-a-cursor")
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
		assert.Equal(t, 0, store.keysetCalls)
	})
}

//go:build unit

package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"unistay/internal/infra/db"
	"unistay/internal/infra/events"
	"unistay/internal/pkg/clock"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationRow struct {
	UserID    uuid.UUID
	Kind      string
	CreatedAt time.Time
}

type recordingNotifications struct {
	rows []notificationRow
}

func (r *recordingNotifications) Create(_ context.Context, _ db.DBTX, userID uuid.UUID, kind string, _ []byte, createdAt time.Time) error {
	r.rows = append(r.rows, notificationRow{UserID: userID, Kind: kind, CreatedAt: createdAt})
	return nil
}

type notifierTx struct {
	notifications *recordingNotifications
}

func (t *notifierTx) Bookings() shared.BookingRepository           { panic("not faked") }
func (t *notifierTx) Calendar() shared.CalendarRepository          { panic("not faked") }
func (t *notifierTx) Properties() shared.PropertyRepository        { panic("not faked") }
func (t *notifierTx) Users() shared.UserRepository                 { panic("not faked") }
func (t *notifierTx) Reviews() shared.ReviewRepository             { panic("not faked") }
func (t *notifierTx) RatingStats() shared.RatingStatsRepository    { panic("not faked") }
func (t *notifierTx) Wishlist() shared.WishlistRepository          { panic("not faked") }
func (t *notifierTx) Conversations() shared.ConversationRepository { panic("not faked") }
func (t *notifierTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *notifierTx) Reads() shared.CommandReads                   { return nil }
func (t *notifierTx) DB() db.DBTX                                  { return nil }

type notifierUow struct {
	tx *notifierTx
}

func (u *notifierUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *notifierUow) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *notifierUow) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *notifierUow) CommandReads() shared.CommandReads { return nil }

func newTestNotifier(now time.Time) (*Notifier, *recordingNotifications) {
	notifications := &recordingNotifications{}
	uow := &notifierUow{tx: &notifierTx{notifications: notifications}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNotifier(uow, clock.NewMockClock(now), logger), notifications
}

func eventMessage(t *testing.T, event events.BookingEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Value: value}
}

func TestNotifierHandle(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	guestID := uuid.New()
	hostID := uuid.New()
	base := events.BookingEvent{
		BookingID:  uuid.New(),
		PropertyID: uuid.New(),
		GuestID:    guestID,
		HostID:     hostID,
		OccurredAt: now,
	}

	t.Run("created notifies the host", func(t *testing.T) {
		n, rows := newTestNotifier(now)
		event := base
		event.Type = events.TypeBookingCreated

		require.NoError(t, n.Handle(context.Background(), eventMessage(t, event)))
		require.Len(t, rows.rows, 1)
		assert.Equal(t, hostID, rows.rows[0].UserID)
		assert.Equal(t, events.TypeBookingCreated, rows.rows[0].Kind)
		assert.Equal(t, now, rows.rows[0].CreatedAt)
	})

	t.Run("confirmed notifies the guest", func(t *testing.T) {
		n, rows := newTestNotifier(now)
		event := base
		event.Type = events.TypeBookingConfirmed

		require.NoError(t, n.Handle(context.Background(), eventMessage(t, event)))
		require.Len(t, rows.rows, 1)
		assert.Equal(t, guestID, rows.rows[0].UserID)
	})

	t.Run("cancelled notifies both sides", func(t *testing.T) {
		n, rows := newTestNotifier(now)
		event := base
		event.Type = events.TypeBookingCancelled

		require.NoError(t, n.Handle(context.Background(), eventMessage(t, event)))
		require.Len(t, rows.rows, 2)
		assert.Equal(t, guestID, rows.rows[0].UserID)
		assert.Equal(t, hostID, rows.rows[1].UserID)
	})

	t.Run("malformed payload is skipped without error", func(t *testing.T) {
		n, rows := newTestNotifier(now)

		err := n.Handle(context.Background(), kafka.Message{Value: []byte("{not json")})
		require.NoError(t, err)
		assert.Empty(t, rows.rows)
	})

	t.Run("unknown event type is skipped without error", func(t *testing.T) {
		n, rows := newTestNotifier(now)
		event := base
		event.Type = "booking.archived"

		require.NoError(t, n.Handle(context.Background(), eventMessage(t, event)))
		assert.Empty(t, rows.rows)
	})
}

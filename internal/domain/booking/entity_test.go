//go:build unit

package booking_test

import (
	"testing"
	"time"

	"unistay/internal/domain/booking"
	"unistay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.Property.ID, actual.PropertyID())
		assert.Equal(t, b.Property.HostID, actual.HostID())
		assert.Equal(t, b.GuestID, actual.GuestID())
		assert.Equal(t, 4, actual.Nights())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentPending, actual.PaymentStatus())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, b.Now, actual.UpdatedAt())
		assert.Equal(t, actual.Quote().Subtotal.Cents()+actual.Quote().ServiceFee.Cents()+actual.Quote().CleaningFee.Cents(),
			actual.Quote().Total.Cents())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "inactive property",
				mutate: func(b *builder.BookingBuilder) { b.Property.IsActive = false },
				errIs:  booking.ErrInactiveProperty,
			},
			{
				name:   "host booking own property",
				mutate: func(b *builder.BookingBuilder) { b.GuestID = b.Property.HostID },
				errIs:  booking.ErrHostBookingOwnPlace,
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.BookingBuilder) { b.GuestCount = 0 },
				errIs:  booking.ErrInvalidGuestCount,
			},
			{
				name:   "over guest limit",
				mutate: func(b *builder.BookingBuilder) { b.GuestCount = 3 },
				errIs:  booking.ErrTooManyGuests,
			},
			{
				name: "stay below property minimum",
				mutate: func(b *builder.BookingBuilder) {
					b.Property.MinimumStayWeeks = 2
				},
				errIs: booking.ErrStayTooShort,
			},
			{
				name: "stay above property maximum",
				mutate: func(b *builder.BookingBuilder) {
					b.Property.MaximumStayMonths = 1
					b.CheckOut = b.CheckIn.AddDate(0, 0, 31)
				},
				errIs: booking.ErrStayTooLong,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().With(tc.mutate)
				_, err := b.BuildDomain()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestBookingConfirm(t *testing.T) {
	now := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	t.Run("host confirms pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Confirm(b.Property.HostID, now))
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
	})

	t.Run("confirming twice is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Confirm(b.Property.HostID, now))
		require.NoError(t, actual.Confirm(b.Property.HostID, now.Add(time.Hour)))
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
	})

	t.Run("guest cannot confirm", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, actual.Confirm(b.GuestID, now), booking.ErrNotHost)
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Cancel(b.GuestID, "plans changed", now))
		assert.ErrorIs(t, actual.Confirm(b.Property.HostID, now), booking.ErrCancelledNoConfirm)
	})
}

func TestBookingCancel(t *testing.T) {
	now := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	t.Run("guest cancels with reason", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Cancel(b.GuestID, "found another place", now))
		assert.Equal(t, booking.StatusCancelled, actual.Status())
		require.NotNil(t, actual.CancelledBy())
		assert.Equal(t, b.GuestID, *actual.CancelledBy())
		require.NotNil(t, actual.CancellationReason())
		assert.Equal(t, "found another place", *actual.CancellationReason())
		assert.False(t, actual.IsActive())
	})

	t.Run("host may also cancel", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Cancel(b.Property.HostID, "", now))
		require.NotNil(t, actual.CancelledBy())
		assert.Equal(t, b.Property.HostID, *actual.CancelledBy())
		assert.Nil(t, actual.CancellationReason())
	})

	t.Run("outsider cannot cancel", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, actual.Cancel(uuid.New(), "", now), booking.ErrNotParticipant)
	})

	t.Run("cancelling twice is a conflict", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Cancel(b.GuestID, "first", now))
		err = actual.Cancel(b.Property.HostID, "second", now.Add(time.Hour))
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)

		// terminal fields keep the first cancellation
		assert.Equal(t, b.GuestID, *actual.CancelledBy())
		assert.Equal(t, "first", *actual.CancellationReason())
		assert.Equal(t, now, *actual.CancelledAt())
	})
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"unistay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestStayRange(t *testing.T) {
	t.Run("normalizes times of day to midnight UTC", func(t *testing.T) {
		stay, err := booking.NewStayRange(
			time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		assert.Equal(t, date(2026, 9, 1), stay.CheckIn())
		assert.Equal(t, date(2026, 9, 5), stay.CheckOut())
		assert.Equal(t, 4, stay.Nights())
	})

	t.Run("check-in must precede check-out", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 9, 5), date(2026, 9, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)

		// same day is zero nights, also invalid
		_, err = booking.NewStayRange(date(2026, 9, 1), date(2026, 9, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("dates exclude check-out day", func(t *testing.T) {
		stay := mustStay(t, date(2026, 9, 1), date(2026, 9, 4))
		dates := stay.Dates()

		require.Len(t, dates, 3)
		assert.Equal(t, date(2026, 9, 1), dates[0])
		assert.Equal(t, date(2026, 9, 3), dates[2])
	})

	t.Run("back to back stays do not overlap", func(t *testing.T) {
		first := mustStay(t, date(2026, 9, 1), date(2026, 9, 5))
		second := mustStay(t, date(2026, 9, 5), date(2026, 9, 10))

		assert.False(t, first.Overlaps(second))
		assert.False(t, second.Overlaps(first))
	})

	t.Run("overlapping stays", func(t *testing.T) {
		first := mustStay(t, date(2026, 9, 1), date(2026, 9, 10))
		second := mustStay(t, date(2026, 9, 9), date(2026, 9, 12))
		contained := mustStay(t, date(2026, 9, 3), date(2026, 9, 4))

		assert.True(t, first.Overlaps(second))
		assert.True(t, second.Overlaps(first))
		assert.True(t, first.Overlaps(contained))
	})

	t.Run("contains is half-open", func(t *testing.T) {
		stay := mustStay(t, date(2026, 9, 1), date(2026, 9, 5))

		assert.True(t, stay.Contains(date(2026, 9, 1)))
		assert.True(t, stay.Contains(date(2026, 9, 4)))
		assert.False(t, stay.Contains(date(2026, 9, 5)))
		assert.False(t, stay.Contains(date(2026, 8, 31)))
	})

	t.Run("stay length limits", func(t *testing.T) {
		short := mustStay(t, date(2026, 9, 1), date(2026, 9, 5))
		assert.ErrorIs(t, short.ValidateStayLength(1, 0), booking.ErrStayTooShort)

		exactWeek := mustStay(t, date(2026, 9, 1), date(2026, 9, 8))
		assert.NoError(t, exactWeek.ValidateStayLength(1, 0))

		long := mustStay(t, date(2026, 1, 1), date(2026, 3, 15))
		assert.ErrorIs(t, long.ValidateStayLength(0, 2), booking.ErrStayTooLong)

		// zero bounds disable the check
		assert.NoError(t, short.ValidateStayLength(0, 0))
	})
}

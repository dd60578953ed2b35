//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"unistay/internal/domain/review"
	"unistay/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowAll struct{}

func (allowAll) CanPostReview(review.EligibilityInput) error { return nil }

type denyAll struct{ err error }

func (d denyAll) CanPostReview(review.EligibilityInput) error { return d.err }

func testServices(checker review.EligibilityChecker) *review.Services {
	return &review.Services{
		Clock:              clock.NewMockClock(time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)),
		EligibilityChecker: checker,
	}
}

func TestNewRating(t *testing.T) {
	for _, v := range []int{1, 3, 5} {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Value())
	}
	for _, v := range []int{0, 6, -1} {
		_, err := review.NewRating(v)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	}
}

func TestNewComment(t *testing.T) {
	t.Run("trims and accepts", func(t *testing.T) {
		c, err := review.NewComment("  great landlord  ")
		require.NoError(t, err)
		assert.Equal(t, "great landlord", c.String())
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := review.NewComment("   ")
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})

	t.Run("length boundary", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength))
		require.NoError(t, err)

		_, err = review.NewComment(strings.Repeat("a", review.MaxCommentLength+1))
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}

func TestNewReview(t *testing.T) {
	rating, err := review.NewRating(4)
	require.NoError(t, err)
	comment, err := review.NewComment("quiet street, fast wifi")
	require.NoError(t, err)

	guestID := uuid.New()
	propertyID := uuid.New()
	bookingID := uuid.New()

	t.Run("eligible booking", func(t *testing.T) {
		actual, err := review.NewReview(testServices(allowAll{}), guestID, propertyID, bookingID, rating, comment)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, bookingID, actual.BookingID())
		assert.Equal(t, propertyID, actual.PropertyID())
		assert.Equal(t, guestID, actual.GuestID())
		assert.Equal(t, 4, actual.Rating().Value())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("ineligible booking propagates the reason", func(t *testing.T) {
		services := testServices(denyAll{err: review.ErrBookingNotEligible})
		_, err := review.NewReview(services, guestID, propertyID, bookingID, rating, comment)
		assert.ErrorIs(t, err, review.ErrBookingNotEligible)
	})
}

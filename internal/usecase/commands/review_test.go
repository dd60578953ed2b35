//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"unistay/internal/domain/review"
	"unistay/internal/domain/user"
	"unistay/internal/infra/db"
	"unistay/internal/pkg/clock"
	"unistay/internal/usecase/commands"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	created *review.Review
	updated *review.Review
	deleted []uuid.UUID
}

func (f *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	f.created = rev
	return rev.ID(), nil
}

func (f *fakeReviewRepo) Update(_ context.Context, _ db.DBTX, rev *review.Review) error {
	f.updated = rev
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	f.deleted = append(f.deleted, reviewID)
	return nil
}

type fakeStatsRepo struct {
	recalced []uuid.UUID
}

func (f *fakeStatsRepo) RecalcPropertyRatingStats(_ context.Context, _ db.DBTX, propertyID uuid.UUID) error {
	f.recalced = append(f.recalced, propertyID)
	return nil
}

type reviewFixture struct {
	uow     *fakeUow
	reviews *fakeReviewRepo
	stats   *fakeStatsRepo
	uc      commands.ReviewCommands
}

func newReviewFixture(reads *fakeReads) *reviewFixture {
	reviews := &fakeReviewRepo{}
	stats := &fakeStatsRepo{}
	uow := &fakeUow{tx: &fakeTx{
		reads:   reads,
		reviews: reviews,
		stats:   stats,
	}}
	return &reviewFixture{
		uow:     uow,
		reviews: reviews,
		stats:   stats,
		uc:      commands.NewReviewUseCase(uow, clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))),
	}
}

func reviewSnapshot(guestID uuid.UUID) *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		PropertyID: uuid.New(),
		GuestID:    guestID,
		Rating:     4,
		Comment:    "Quiet street, close to campus",
		CreatedAt:  time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestUpdateReview(t *testing.T) {
	t.Run("author changes rating and keeps comment", func(t *testing.T) {
		guestID := uuid.New()
		snap := reviewSnapshot(guestID)
		f := newReviewFixture(&fakeReads{review: snap})

		err := f.uc.UpdateReview(context.Background(), commands.UpdateReviewRequest{
			ReviewID: snap.ID,
			Rating:   intPtr(2),
		}, guestID)
		require.NoError(t, err)

		require.NotNil(t, f.reviews.updated)
		assert.Equal(t, snap.ID, f.reviews.updated.ID())
		assert.Equal(t, 2, f.reviews.updated.Rating().Value())
		assert.Equal(t, snap.Comment, f.reviews.updated.Comment().String())
		assert.Equal(t, []uuid.UUID{snap.PropertyID}, f.stats.recalced)
		assert.Equal(t, 1, f.uow.commits)
	})

	t.Run("another guest is rejected", func(t *testing.T) {
		snap := reviewSnapshot(uuid.New())
		f := newReviewFixture(&fakeReads{review: snap})

		err := f.uc.UpdateReview(context.Background(), commands.UpdateReviewRequest{
			ReviewID: snap.ID,
			Comment:  strPtr("rewritten"),
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrReviewForbidden)
		assert.Nil(t, f.reviews.updated)
		assert.Empty(t, f.stats.recalced)
	})

	t.Run("unknown review maps to not found", func(t *testing.T) {
		f := newReviewFixture(&fakeReads{})

		err := f.uc.UpdateReview(context.Background(), commands.UpdateReviewRequest{
			ReviewID: uuid.New(),
			Rating:   intPtr(5),
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrReviewNotFoundWrite)
	})

	t.Run("blank comment fails validation", func(t *testing.T) {
		guestID := uuid.New()
		snap := reviewSnapshot(guestID)
		f := newReviewFixture(&fakeReads{review: snap})

		err := f.uc.UpdateReview(context.Background(), commands.UpdateReviewRequest{
			ReviewID: snap.ID,
			Comment:  strPtr("   "),
		}, guestID)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Nil(t, f.reviews.updated)
	})
}

func TestDeleteReview(t *testing.T) {
	t.Run("author deletes and stats refresh", func(t *testing.T) {
		guestID := uuid.New()
		snap := reviewSnapshot(guestID)
		f := newReviewFixture(&fakeReads{review: snap})

		err := f.uc.DeleteReview(context.Background(), snap.ID, guestID, user.RoleGuest)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{snap.ID}, f.reviews.deleted)
		assert.Equal(t, []uuid.UUID{snap.PropertyID}, f.stats.recalced)
	})

	t.Run("admin may delete any review", func(t *testing.T) {
		snap := reviewSnapshot(uuid.New())
		f := newReviewFixture(&fakeReads{review: snap})

		err := f.uc.DeleteReview(context.Background(), snap.ID, uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{snap.ID}, f.reviews.deleted)
	})

	t.Run("other guests are rejected", func(t *testing.T) {
		snap := reviewSnapshot(uuid.New())
		f := newReviewFixture(&fakeReads{review: snap})

		err := f.uc.DeleteReview(context.Background(), snap.ID, uuid.New(), user.RoleGuest)
		require.ErrorIs(t, err, commands.ErrReviewForbidden)
		assert.Empty(t, f.reviews.deleted)
	})

	t.Run("unknown review maps to not found", func(t *testing.T) {
		f := newReviewFixture(&fakeReads{})

		err := f.uc.DeleteReview(context.Background(), uuid.New(), uuid.New(), user.RoleGuest)
		require.ErrorIs(t, err, commands.ErrReviewNotFoundWrite)
	})
}

package repository

import (
	"context"

	"unistay/internal/domain/review"
	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() shared.ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO reviews (id, booking_id, property_id, guest_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rev.ID(), rev.BookingID(), rev.PropertyID(), rev.GuestID(),
		rev.Rating().Value(), rev.Comment().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return rev.ID(), nil
}

func (r *ReviewRepository) Update(ctx context.Context, dbtx db.DBTX, rev *review.Review) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1`,
		rev.ID(), rev.Rating().Value(), rev.Comment().String(), rev.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, dbtx db.DBTX, reviewID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

type RatingStatsRepository struct{}

func NewRatingStatsRepository() shared.RatingStatsRepository {
	return &RatingStatsRepository{}
}

// RecalcPropertyRatingStats rebuilds the denormalized stats row from the
// reviews table inside the same transaction that wrote the review.
func (r *RatingStatsRepository) RecalcPropertyRatingStats(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO property_rating_stats (property_id, review_count, average_rating, updated_at)
		SELECT $1, COUNT(*), AVG(rating)::numeric(3, 2), now()
		FROM reviews WHERE property_id = $1
		ON CONFLICT (property_id) DO UPDATE
			SET review_count = EXCLUDED.review_count,
				average_rating = EXCLUDED.average_rating,
				updated_at = EXCLUDED.updated_at`,
		propertyID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to recalc rating stats", err)
	}
	return nil
}

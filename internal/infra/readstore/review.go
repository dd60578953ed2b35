package readstore

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewStore interface {
	FindByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*queries.ReviewView, error)
	FindByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error)
}

type ReviewReadStore struct {
	dbtx db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{dbtx: dbtx}
}

const reviewViewSelect = `
	SELECT r.id, r.booking_id, r.property_id, r.guest_id, u.email,
		r.rating, r.comment, r.created_at
	FROM reviews r
	JOIN users u ON u.id = r.guest_id`

func (r *ReviewReadStore) FindByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.dbtx.Query(ctx, reviewViewSelect+`
		WHERE r.property_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`,
		propertyID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find property reviews first page", err)
	}
	return scanReviewViews(rows)
}

func (r *ReviewReadStore) FindByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.dbtx.Query(ctx, reviewViewSelect+`
		WHERE r.property_id = $1 AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`,
		propertyID, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find property reviews keyset", err)
	}
	return scanReviewViews(rows)
}

func scanReviewViews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	defer rows.Close()

	items := make([]*queries.ReviewView, 0)
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(
			&v.ID, &v.BookingID, &v.PropertyID, &v.GuestID, &v.GuestEmail,
			&v.Rating, &v.Comment, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return items, nil
}

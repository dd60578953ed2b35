package readstore

import (
	"context"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
)

type WishlistStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.WishlistItemView, error)
}

type WishlistReadStore struct {
	dbtx db.DBTX
}

func NewWishlistReadStore(dbtx db.DBTX) *WishlistReadStore {
	return &WishlistReadStore{dbtx: dbtx}
}

func (r *WishlistReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.WishlistItemView, error) {
	rows, err := r.dbtx.Query(ctx, `
		SELECT w.property_id, p.title, p.city, p.monthly_price_cents, p.is_active, w.created_at
		FROM wishlist_items w
		JOIN properties p ON p.id = w.property_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find wishlist items", err)
	}
	defer rows.Close()

	items := make([]*queries.WishlistItemView, 0)
	for rows.Next() {
		var v queries.WishlistItemView
		if err := rows.Scan(&v.PropertyID, &v.Title, &v.City, &v.MonthlyPriceCents, &v.IsActive, &v.SavedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wishlist row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wishlist rows", err)
	}
	return items, nil
}

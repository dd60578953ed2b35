package repository

import (
	"context"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type WishlistRepository struct{}

func NewWishlistRepository() shared.WishlistRepository {
	return &WishlistRepository{}
}

// Add is idempotent: saving an already-saved property is not an error.
func (r *WishlistRepository) Add(ctx context.Context, dbtx db.DBTX, userID, propertyID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO wishlist_items (user_id, property_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, property_id) DO NOTHING`,
		userID, propertyID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to add wishlist item", err)
	}
	return nil
}

func (r *WishlistRepository) Remove(ctx context.Context, dbtx db.DBTX, userID, propertyID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		DELETE FROM wishlist_items WHERE user_id = $1 AND property_id = $2`,
		userID, propertyID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to remove wishlist item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wishlist item not found", nil, infra.KindNotFound)
	}
	return nil
}

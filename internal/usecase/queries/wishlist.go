package queries

import (
	"context"

	"github.com/google/uuid"
)

type WishlistQueries interface {
	ListWishlist(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error)
}

type WishlistReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error)
}

type wishlistQueriesImpl struct {
	readStore WishlistReadStore
}

func NewWishlistQueries(readStore WishlistReadStore) WishlistQueries {
	return &wishlistQueriesImpl{readStore: readStore}
}

func (q *wishlistQueriesImpl) ListWishlist(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error) {
	return q.readStore.FindByUser(ctx, userID)
}

package commands

import (
	"context"

	"unistay/internal/infra"
	"unistay/internal/pkg/errs"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrWishlistItemNotFound = errs.New("wishlist item not found")

type WishlistCommands interface {
	SaveProperty(ctx context.Context, userID, propertyID uuid.UUID) error
	UnsaveProperty(ctx context.Context, userID, propertyID uuid.UUID) error
}

type wishlistUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewWishlistUseCase(uow shared.UnitOfWork) WishlistCommands {
	return &wishlistUseCaseImpl{uow: uow}
}

func (uc *wishlistUseCaseImpl) SaveProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().PropertyByID(ctx, propertyID); derr != nil {
			return markNotFound(derr, ErrPropertyNotFoundWrite)
		}
		return tx.Wishlist().Add(ctx, tx.DB(), userID, propertyID)
	})
}

func (uc *wishlistUseCaseImpl) UnsaveProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Wishlist().Remove(ctx, tx.DB(), userID, propertyID)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrWishlistItemNotFound)
	}
	return err
}

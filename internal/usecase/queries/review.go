package queries

import (
	"context"
	"time"

	"unistay/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewList struct {
	Items      []*ReviewView `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

type ReviewQueries interface {
	ListPropertyReviews(ctx context.Context, propertyID uuid.UUID, limit int, after string) (*ReviewList, error)
}

type ReviewReadStore interface {
	FindByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) ListPropertyReviews(ctx context.Context, propertyID uuid.UUID, limit int, after string) (*ReviewList, error) {
	validLimit := int32(ValidateLimit(limit)) // #nosec G115 -- bounded by MaxListLimit

	var items []*ReviewView
	var err error
	if after == "" {
		items, err = q.readStore.FindByPropertyFirstPage(ctx, propertyID, validLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after)
		if decodeErr != nil {
			return nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.FindByPropertyKeyset(ctx, propertyID, lastCreatedAt, lastID, validLimit)
	}
	if err != nil {
		return nil, err
	}

	list := &ReviewList{Items: items}
	if len(items) == int(validLimit) {
		last := items[len(items)-1]
		list.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return list, nil
}

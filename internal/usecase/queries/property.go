package queries

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errs.New("property not found")

type PropertyList struct {
	Items      []*PropertyListItem `json:"items"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

type PropertyQueries interface {
	GetProperty(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	SearchProperties(ctx context.Context, filter PropertyFilter, limit int, after string) (*PropertyList, error)
	ListHostProperties(ctx context.Context, hostID uuid.UUID) ([]*PropertyListItem, error)
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	SearchFirstPage(ctx context.Context, filter PropertyFilter, limit int32) ([]*PropertyListItem, error)
	SearchKeyset(ctx context.Context, filter PropertyFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PropertyListItem, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*PropertyListItem, error)
}

type propertyQueriesImpl struct {
	readStore PropertyReadStore
}

func NewPropertyQueries(readStore PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{readStore: readStore}
}

func (q *propertyQueriesImpl) GetProperty(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *propertyQueriesImpl) SearchProperties(ctx context.Context, filter PropertyFilter, limit int, after string) (*PropertyList, error) {
	validLimit := int32(ValidateLimit(limit)) // #nosec G115 -- bounded by MaxListLimit

	var items []*PropertyListItem
	var err error
	if after == "" {
		items, err = q.readStore.SearchFirstPage(ctx, filter, validLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after)
		if decodeErr != nil {
			return nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.SearchKeyset(ctx, filter, lastCreatedAt, lastID, validLimit)
	}
	if err != nil {
		return nil, err
	}

	list := &PropertyList{Items: items}
	if len(items) == int(validLimit) {
		last := items[len(items)-1]
		list.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return list, nil
}

func (q *propertyQueriesImpl) ListHostProperties(ctx context.Context, hostID uuid.UUID) ([]*PropertyListItem, error) {
	return q.readStore.FindByHost(ctx, hostID)
}

package queries

import (
	"context"
	"encoding/json"
	"time"

	"unistay/internal/pkg/errs"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	ReadAt    *time.Time      `json:"read_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type NotificationList struct {
	Items      []*NotificationView `json:"items"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

type NotificationQueries interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int, after string) (*NotificationList, error)
}

type NotificationReadStore interface {
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListNotifications(ctx context.Context, userID uuid.UUID, limit int, after string) (*NotificationList, error) {
	validLimit := int32(ValidateLimit(limit)) // #nosec G115 -- bounded by MaxListLimit

	var items []*NotificationView
	var err error
	if after == "" {
		items, err = q.readStore.FindByUserFirstPage(ctx, userID, validLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after)
		if decodeErr != nil {
			return nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.readStore.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, validLimit)
	}
	if err != nil {
		return nil, err
	}

	list := &NotificationList{Items: items}
	if len(items) == int(validLimit) {
		last := items[len(items)-1]
		list.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return list, nil
}

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

type NotificationReadStore struct {
	dbtx db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{dbtx: dbtx}
}

const notificationViewSelect = `
	SELECT id, kind, payload, read_at, created_at
	FROM notifications`

func (r *NotificationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.dbtx.Query(ctx, notificationViewSelect+`
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notifications first page", err)
	}
	return scanNotificationViews(rows)
}

func (r *NotificationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.dbtx.Query(ctx, notificationViewSelect+`
		WHERE user_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`,
		userID, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notifications keyset", err)
	}
	return scanNotificationViews(rows)
}

func scanNotificationViews(rows pgx.Rows) ([]*queries.NotificationView, error) {
	defer rows.Close()

	items := make([]*queries.NotificationView, 0)
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Payload, &v.ReadAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification rows", err)
	}
	return items, nil
}

package repository

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() shared.NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, kind string, payload []byte, createdAt time.Time) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO notifications (user_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4)`,
		userID, kind, payload, createdAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

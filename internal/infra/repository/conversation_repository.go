package repository

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConversationRepository struct{}

func NewConversationRepository() shared.ConversationRepository {
	return &ConversationRepository{}
}

// GetOrCreate returns the single conversation for a (property, guest) pair,
// creating it on first contact. The upsert keeps concurrent first messages
// from racing into duplicate threads.
func (r *ConversationRepository) GetOrCreate(ctx context.Context, dbtx db.DBTX, propertyID, guestID, hostID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO conversations (property_id, guest_id, host_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (property_id, guest_id) DO UPDATE SET host_id = conversations.host_id
		RETURNING id`,
		propertyID, guestID, hostID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to get or create conversation", err)
	}
	return id, nil
}

func (r *ConversationRepository) AddMessage(ctx context.Context, dbtx db.DBTX, conversationID, senderID uuid.UUID, body string, sentAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO messages (conversation_id, sender_id, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		conversationID, senderID, body, sentAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to add message", err)
	}
	return id, nil
}

package readstore

import (
	"context"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConversationStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ConversationView, error)
	FindMessages(ctx context.Context, conversationID uuid.UUID, limit int32) ([]*queries.MessageView, error)
}

type ConversationReadStore struct {
	dbtx db.DBTX
}

func NewConversationReadStore(dbtx db.DBTX) *ConversationReadStore {
	return &ConversationReadStore{dbtx: dbtx}
}

func (r *ConversationReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ConversationView, error) {
	rows, err := r.dbtx.Query(ctx, `
		SELECT c.id, c.property_id, p.title, c.guest_id, c.host_id,
			(SELECT MAX(m.created_at) FROM messages m WHERE m.conversation_id = c.id),
			c.created_at
		FROM conversations c
		JOIN properties p ON p.id = c.property_id
		WHERE c.guest_id = $1 OR c.host_id = $1
		ORDER BY c.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find conversations", err)
	}
	defer rows.Close()

	items := make([]*queries.ConversationView, 0)
	for rows.Next() {
		var v queries.ConversationView
		if err := rows.Scan(&v.ID, &v.PropertyID, &v.PropertyTitle, &v.GuestID, &v.HostID, &v.LastMessageAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conversation row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read conversation rows", err)
	}
	return items, nil
}

func (r *ConversationReadStore) FindMessages(ctx context.Context, conversationID uuid.UUID, limit int32) ([]*queries.MessageView, error) {
	rows, err := r.dbtx.Query(ctx, `
		SELECT id, conversation_id, sender_id, body, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
		LIMIT $2`,
		conversationID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find messages", err)
	}
	defer rows.Close()

	items := make([]*queries.MessageView, 0)
	for rows.Next() {
		var v queries.MessageView
		if err := rows.Scan(&v.ID, &v.ConversationID, &v.SenderID, &v.Body, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read message rows", err)
	}
	return items, nil
}

package queries

import (
	"context"

	"unistay/internal/infra"
	"unistay/internal/pkg/errs"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errs.New("conversation not found")
	ErrConversationAccess   = errs.New("conversation access denied")
)

const defaultMessagePageSize = 100

type ConversationQueries interface {
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationView, error)
	ListMessages(ctx context.Context, conversationID, callerID uuid.UUID) ([]*MessageView, error)
}

type ConversationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ConversationView, error)
	FindMessages(ctx context.Context, conversationID uuid.UUID, limit int32) ([]*MessageView, error)
}

type conversationQueriesImpl struct {
	readStore    ConversationReadStore
	commandReads shared.CommandReads
}

func NewConversationQueries(readStore ConversationReadStore, commandReads shared.CommandReads) ConversationQueries {
	return &conversationQueriesImpl{
		readStore:    readStore,
		commandReads: commandReads,
	}
}

func (q *conversationQueriesImpl) ListConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationView, error) {
	return q.readStore.FindByUser(ctx, userID)
}

func (q *conversationQueriesImpl) ListMessages(ctx context.Context, conversationID, callerID uuid.UUID) ([]*MessageView, error) {
	snap, err := q.commandReads.ConversationByID(ctx, conversationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	if callerID != snap.GuestID && callerID != snap.HostID {
		return nil, ErrConversationAccess
	}

	return q.readStore.FindMessages(ctx, conversationID, defaultMessagePageSize)
}

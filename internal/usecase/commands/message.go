package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"unistay/internal/pkg/clock"
	"unistay/internal/pkg/errs"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage       = errs.New("message body cannot be empty")
	ErrMessageTooLong     = errs.New("message body exceeds maximum length")
	ErrConversationAccess = errs.New("conversation access denied")
	ErrMessagingSelf      = errs.New("host cannot message their own listing")
)

const maxMessageLength = 4000

type SendMessageRequest struct {
	PropertyID uuid.UUID
	Body       string
}

type SendMessageResult struct {
	ConversationID uuid.UUID
	MessageID      uuid.UUID
}

type MessageCommands interface {
	// StartConversation sends the first (or another) message from a guest
	// to a property's host, creating the thread on first contact.
	StartConversation(ctx context.Context, req SendMessageRequest, guestID uuid.UUID) (*SendMessageResult, error)
	// ReplyTo appends a message to an existing thread. Both participants
	// may reply.
	ReplyTo(ctx context.Context, conversationID uuid.UUID, body string, senderID uuid.UUID) (*SendMessageResult, error)
}

type messageUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMessageUseCase(uow shared.UnitOfWork, clk clock.Clock) MessageCommands {
	return &messageUseCaseImpl{uow: uow, clock: clk}
}

func (uc *messageUseCaseImpl) StartConversation(ctx context.Context, req SendMessageRequest, guestID uuid.UUID) (*SendMessageResult, error) {
	body, err := validateBody(req.Body)
	if err != nil {
		return nil, err
	}

	var result *SendMessageResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, derr := tx.Reads().PropertyByID(ctx, req.PropertyID)
		if derr != nil {
			return markNotFound(derr, ErrPropertyNotFoundWrite)
		}
		if prop.HostID == guestID {
			return ErrMessagingSelf
		}

		convID, derr := tx.Conversations().GetOrCreate(ctx, tx.DB(), prop.ID, guestID, prop.HostID)
		if derr != nil {
			return derr
		}

		msgID, derr := tx.Conversations().AddMessage(ctx, tx.DB(), convID, guestID, body, uc.clock.Now())
		if derr != nil {
			return derr
		}

		uc.notify(ctx, tx, prop.HostID, convID, msgID)
		result = &SendMessageResult{ConversationID: convID, MessageID: msgID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *messageUseCaseImpl) ReplyTo(ctx context.Context, conversationID uuid.UUID, body string, senderID uuid.UUID) (*SendMessageResult, error) {
	validBody, err := validateBody(body)
	if err != nil {
		return nil, err
	}

	var result *SendMessageResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, derr := tx.Reads().ConversationByID(ctx, conversationID)
		if derr != nil {
			return markNotFound(derr, ErrConversationAccess)
		}

		var recipient uuid.UUID
		switch senderID {
		case conv.GuestID:
			recipient = conv.HostID
		case conv.HostID:
			recipient = conv.GuestID
		default:
			return ErrConversationAccess
		}

		msgID, derr := tx.Conversations().AddMessage(ctx, tx.DB(), conversationID, senderID, validBody, uc.clock.Now())
		if derr != nil {
			return derr
		}

		uc.notify(ctx, tx, recipient, conversationID, msgID)
		result = &SendMessageResult{ConversationID: conversationID, MessageID: msgID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *messageUseCaseImpl) notify(ctx context.Context, tx shared.Tx, recipientID, conversationID, messageID uuid.UUID) {
	payload, err := json.Marshal(map[string]string{
		"conversation_id": conversationID.String(),
		"message_id":      messageID.String(),
	})
	if err != nil {
		slog.Warn("failed to marshal message notification", "error", err.Error())
		return
	}
	if err := tx.Notifications().Create(ctx, tx.DB(), recipientID, "message.received", payload, uc.clock.Now()); err != nil {
		// The message itself matters more than the notification row
		slog.Warn("failed to create message notification", "recipient", recipientID.String(), "error", err.Error())
	}
}

func validateBody(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", ErrEmptyMessage
	}
	if len(trimmed) > maxMessageLength {
		return "", ErrMessageTooLong
	}
	return trimmed, nil
}

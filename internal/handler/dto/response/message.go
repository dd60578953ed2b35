package response

import (
	"github.com/google/uuid"
)

type MessageSentResponse struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
}

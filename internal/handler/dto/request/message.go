package request

import (
	"github.com/google/uuid"
)

type StartConversationRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Body       string    `json:"body" binding:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

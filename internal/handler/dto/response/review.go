package response

import (
	"github.com/google/uuid"
)

type ReviewCreatedResponse struct {
	ReviewID uuid.UUID `json:"review_id"`
}

package response

import (
	"github.com/google/uuid"
)

type PropertyCreatedResponse struct {
	PropertyID uuid.UUID `json:"property_id"`
}

package review

import (
	"time"

	"unistay/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	BookingID  uuid.UUID
	GuestID    uuid.UUID
	PropertyID uuid.UUID
	Now        time.Time
}

// EligibilityChecker decides whether a guest may review: the booking must
// belong to them, match the property, be confirmed, and be fully checked out.
type EligibilityChecker interface {
	CanPostReview(input EligibilityInput) error
}

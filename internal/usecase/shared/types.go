package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads. Query views live in
// the queries package; these carry only what writes need to decide.

type PropertySnapshot struct {
	ID                   uuid.UUID
	HostID               uuid.UUID
	Title                string
	City                 string
	MonthlyPriceCents    int64
	CleaningFeeCents     int64
	SecurityDepositCents int64
	MinimumStayWeeks     int
	MaximumStayMonths    int
	MaxGuests            int
	IsActive             bool
}

type BookingSnapshot struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	GuestID       uuid.UUID
	HostID        uuid.UUID
	Status        string
	PaymentStatus string
	CheckIn       time.Time
	CheckOut      time.Time
	GuestCount    int
	DailyRate     int64
	Subtotal      int64
	ServiceFee    int64
	CleaningFee   int64
	Deposit       int64
	Total         int64
	ConfirmedAt   *time.Time
	CancelledAt   *time.Time
	CreatedAt     time.Time
}

type ReviewSnapshot struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	PropertyID uuid.UUID
	GuestID    uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

type ConversationSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	GuestID    uuid.UUID
	HostID     uuid.UUID
}

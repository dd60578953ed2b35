package queries

import (
	"time"

	"unistay/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID                   uuid.UUID  `json:"id"`
	PropertyID           uuid.UUID  `json:"property_id"`
	PropertyTitle        string     `json:"property_title"`
	PropertyCity         string     `json:"property_city"`
	GuestID              uuid.UUID  `json:"guest_id"`
	GuestEmail           string     `json:"guest_email"`
	HostID               uuid.UUID  `json:"host_id"`
	CheckIn              time.Time  `json:"check_in"`
	CheckOut             time.Time  `json:"check_out"`
	Nights               int32      `json:"nights"`
	GuestCount           int32      `json:"guest_count"`
	DailyRateCents       int64      `json:"daily_rate_cents"`
	SubtotalCents        int64      `json:"subtotal_cents"`
	ServiceFeeCents      int64      `json:"service_fee_cents"`
	CleaningFeeCents     int64      `json:"cleaning_fee_cents"`
	SecurityDepositCents int64      `json:"security_deposit_cents"`
	TotalCents           int64      `json:"total_cents"`
	Status               string     `json:"status"`
	PaymentStatus        string     `json:"payment_status"`
	CancelledBy          *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason   *string    `json:"cancellation_reason,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	TotalCents    int64     `json:"total_cents"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PropertyView struct {
	ID                   uuid.UUID `json:"id"`
	HostID               uuid.UUID `json:"host_id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	City                 string    `json:"city"`
	MonthlyPriceCents    int64     `json:"monthly_price_cents"`
	CleaningFeeCents     int64     `json:"cleaning_fee_cents"`
	SecurityDepositCents int64     `json:"security_deposit_cents"`
	MinimumStayWeeks     int32     `json:"minimum_stay_weeks"`
	MaximumStayMonths    int32     `json:"maximum_stay_months"`
	Bedrooms             int32     `json:"bedrooms"`
	MaxGuests            int32     `json:"max_guests"`
	IsActive             bool      `json:"is_active"`
	ReviewCount          int32     `json:"review_count"`
	AverageRating        *float64  `json:"average_rating,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PropertyFilter narrows search results. Nil fields mean "any".
type PropertyFilter struct {
	City                 *string
	MinMonthlyPriceCents *int64
	MaxMonthlyPriceCents *int64
	MinGuests            *int32
}

type PropertyListItem struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	City              string    `json:"city"`
	MonthlyPriceCents int64     `json:"monthly_price_cents"`
	Bedrooms          int32     `json:"bedrooms"`
	MaxGuests         int32     `json:"max_guests"`
	ReviewCount       int32     `json:"review_count"`
	AverageRating     *float64  `json:"average_rating,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// UnavailableDate is one calendar date a guest cannot book, tagged with
// whether a booking or a host block claims it.
type UnavailableDate struct {
	Date   time.Time          `json:"date"`
	Status booking.DateStatus `json:"status"`
}

// AvailabilityView lists the dates in [From, Until) a guest cannot book.
type AvailabilityView struct {
	PropertyID       uuid.UUID         `json:"property_id"`
	From             time.Time         `json:"from"`
	Until            time.Time         `json:"until"`
	UnavailableDates []UnavailableDate `json:"unavailable_dates"`
}

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	PropertyID uuid.UUID `json:"property_id"`
	GuestID    uuid.UUID `json:"guest_id"`
	GuestEmail string    `json:"guest_email"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserCredentialsView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type WishlistItemView struct {
	PropertyID        uuid.UUID `json:"property_id"`
	Title             string    `json:"title"`
	City              string    `json:"city"`
	MonthlyPriceCents int64     `json:"monthly_price_cents"`
	IsActive          bool      `json:"is_active"`
	SavedAt           time.Time `json:"saved_at"`
}

type ConversationView struct {
	ID            uuid.UUID  `json:"id"`
	PropertyID    uuid.UUID  `json:"property_id"`
	PropertyTitle string     `json:"property_title"`
	GuestID       uuid.UUID  `json:"guest_id"`
	HostID        uuid.UUID  `json:"host_id"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MessageView struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

package shared

import (
	"context"
	"time"

	"unistay/internal/domain/booking"
	"unistay/internal/domain/property"
	"unistay/internal/domain/review"
	"unistay/internal/domain/user"
	"unistay/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Calendar() CalendarRepository
	Properties() PropertyRepository
	Users() UserRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Wishlist() WishlistRepository
	Conversations() ConversationRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ConversationByID(ctx context.Context, id uuid.UUID) (*ConversationSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
}

type CalendarRepository interface {
	// ReserveDates marks the given stay dates as booked and returns how many
	// rows it actually claimed. A count short of len(dates) means at least
	// one date was already booked or blocked.
	ReserveDates(ctx context.Context, dbtx db.DBTX, propertyID, bookingID uuid.UUID, dates []time.Time) (int64, error)
	UnavailableDates(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, from, until time.Time) ([]time.Time, error)
	ReleaseBooking(ctx context.Context, dbtx db.DBTX, propertyID, bookingID uuid.UUID) error
	BlockDates(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, dates []time.Time) (int64, error)
	UnblockDates(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, dates []time.Time) error
}

type PropertyRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *property.Property) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, p *property.Property) error
	SetActive(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, active bool) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, dbtx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcPropertyRatingStats(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) error
}

type WishlistRepository interface {
	Add(ctx context.Context, dbtx db.DBTX, userID, propertyID uuid.UUID) error
	Remove(ctx context.Context, dbtx db.DBTX, userID, propertyID uuid.UUID) error
}

type ConversationRepository interface {
	GetOrCreate(ctx context.Context, dbtx db.DBTX, propertyID, guestID, hostID uuid.UUID) (uuid.UUID, error)
	AddMessage(ctx context.Context, dbtx db.DBTX, conversationID, senderID uuid.UUID, body string, sentAt time.Time) (uuid.UUID, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, kind string, payload []byte, createdAt time.Time) error
}

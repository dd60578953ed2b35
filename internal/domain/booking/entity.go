package booking

import (
	"errors"
	"strings"
	"time"

	"unistay/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount   = errors.New("guest count must be positive")
	ErrTooManyGuests       = errors.New("guest count exceeds property limit")
	ErrNotParticipant      = errors.New("caller is neither guest nor host on this booking")
	ErrNotHost             = errors.New("only the host can perform this action")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrCancelledNoConfirm  = errors.New("cancelled booking cannot be confirmed")
	ErrInactiveProperty    = errors.New("property is not accepting bookings")
	ErrHostBookingOwnPlace = errors.New("host cannot book their own property")
)

// PropertySpec is the immutable property snapshot a booking is created
// against. It is read inside the same transaction that writes the booking.
type PropertySpec struct {
	ID                   uuid.UUID
	HostID               uuid.UUID
	MonthlyPriceCents    int64
	CleaningFeeCents     int64
	SecurityDepositCents int64
	MinimumStayWeeks     int
	MaximumStayMonths    int
	MaxGuests            int
	IsActive             bool
}

type Services struct {
	Clock      clock.Clock
	Calculator PriceCalculator
}

type Booking struct {
	id                 uuid.UUID
	propertyID         uuid.UUID
	guestID            uuid.UUID
	hostID             uuid.UUID
	stay               StayRange
	guestCount         int
	quote              Quote
	status             Status
	paymentStatus      PaymentStatus
	cancelledBy        *uuid.UUID
	cancelledAt        *time.Time
	cancellationReason *string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewBooking validates the request against the property snapshot and prices
// the stay. The host id is denormalized from the property at creation time.
func NewBooking(services *Services, prop PropertySpec, guestID uuid.UUID, stay StayRange, guestCount int) (*Booking, error) {
	if !prop.IsActive {
		return nil, ErrInactiveProperty
	}
	if guestID == prop.HostID {
		return nil, ErrHostBookingOwnPlace
	}
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if prop.MaxGuests > 0 && guestCount > prop.MaxGuests {
		return nil, ErrTooManyGuests
	}
	if err := stay.ValidateStayLength(prop.MinimumStayWeeks, prop.MaximumStayMonths); err != nil {
		return nil, err
	}

	quote, err := services.Calculator.Quote(PriceInputs{
		MonthlyPriceCents:    prop.MonthlyPriceCents,
		CleaningFeeCents:     prop.CleaningFeeCents,
		SecurityDepositCents: prop.SecurityDepositCents,
	}, stay.Nights())
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:            uuid.New(),
		propertyID:    prop.ID,
		guestID:       guestID,
		hostID:        prop.HostID,
		stay:          stay,
		guestCount:    guestCount,
		quote:         quote,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	GuestID            uuid.UUID
	HostID             uuid.UUID
	Stay               StayRange
	GuestCount         int
	Quote              Quote
	Status             Status
	PaymentStatus      PaymentStatus
	CancelledBy        *uuid.UUID
	CancelledAt        *time.Time
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:                 p.ID,
		propertyID:         p.PropertyID,
		guestID:            p.GuestID,
		hostID:             p.HostID,
		stay:               p.Stay,
		guestCount:         p.GuestCount,
		quote:              p.Quote,
		status:             p.Status,
		paymentStatus:      p.PaymentStatus,
		cancelledBy:        p.CancelledBy,
		cancelledAt:        p.CancelledAt,
		cancellationReason: p.CancellationReason,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

func (b *Booking) IsParticipant(callerID uuid.UUID) bool {
	return callerID == b.guestID || callerID == b.hostID
}

// Confirm moves a pending booking to confirmed. Only the host may confirm;
// confirming an already-confirmed booking is a no-op.
func (b *Booking) Confirm(callerID uuid.UUID, now time.Time) error {
	if callerID != b.hostID {
		return ErrNotHost
	}
	switch b.status {
	case StatusCancelled:
		return ErrCancelledNoConfirm
	case StatusConfirmed:
		return nil
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// Cancel releases the booking's calendar dates. Either participant may
// cancel. A second cancel is a conflict: terminal fields (who, when, why)
// must not be silently rewritten.
func (b *Booking) Cancel(callerID uuid.UUID, reason string, now time.Time) error {
	if !b.IsParticipant(callerID) {
		return ErrNotParticipant
	}
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	b.status = StatusCancelled
	by := callerID
	b.cancelledBy = &by
	at := now
	b.cancelledAt = &at
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		b.cancellationReason = &trimmed
	}
	if b.paymentStatus == PaymentPaid {
		b.paymentStatus = PaymentRefunded
	}
	b.updatedAt = now
	return nil
}

// HasCheckedOut reports whether the stay is fully in the past.
func (b *Booking) HasCheckedOut(now time.Time) bool {
	return !now.Before(b.stay.CheckOut())
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) PropertyID() uuid.UUID        { return b.propertyID }
func (b *Booking) GuestID() uuid.UUID           { return b.guestID }
func (b *Booking) HostID() uuid.UUID            { return b.hostID }
func (b *Booking) Stay() StayRange              { return b.stay }
func (b *Booking) Nights() int                  { return b.stay.Nights() }
func (b *Booking) GuestCount() int              { return b.guestCount }
func (b *Booking) Quote() Quote                 { return b.quote }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CancelledBy() *uuid.UUID      { return b.cancelledBy }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

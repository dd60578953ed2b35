package commands

import (
	"context"
	"errors"
	"time"

	"unistay/internal/domain/booking"
	"unistay/internal/infra"
	"unistay/internal/infra/events"
	"unistay/internal/pkg/clock"
	"unistay/internal/pkg/errs"
	"unistay/internal/pkg/metrics"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFoundWrite = errs.New("property not found")
	ErrBookingNotFoundWrite  = errs.New("booking not found")
	ErrDatesUnavailable      = errs.New("requested dates are not available")
	ErrBookingForbidden      = errs.New("caller may not act on this booking")
	ErrBookingConflict       = errs.New("booking state conflict")
	ErrDomainValidation      = errs.New("domain validation error")
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
}

type CreateBookingResult struct {
	BookingID  uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	GuestCount int
	Status     booking.Status
	Quote      booking.Quote
}

// CacheInvalidator drops cached availability after calendar writes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, propertyID uuid.UUID)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, guestID uuid.UUID) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, bookingID, callerID uuid.UUID) error
	CancelBooking(ctx context.Context, bookingID, callerID uuid.UUID, reason string) error
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	calculator booking.PriceCalculator
	publisher  events.Publisher
	cache      CacheInvalidator
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	calculator booking.PriceCalculator,
	publisher events.Publisher,
	cache CacheInvalidator,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		clock:      clk,
		calculator: calculator,
		publisher:  publisher,
		cache:      cache,
	}
}

// CreateBooking books the stay and claims its calendar dates in one
// transaction. The calendar's primary key makes concurrent overlapping
// requests serialize: whoever claims a date first wins, the loser's
// transaction rolls back and surfaces ErrDatesUnavailable.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, guestID uuid.UUID) (*CreateBookingResult, error) {
	stay, err := booking.NewStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	services := &booking.Services{
		Clock:      uc.clock,
		Calculator: uc.calculator,
	}

	var result *CreateBookingResult
	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PropertyByID(ctx, req.PropertyID)
		if derr != nil {
			return markNotFound(derr, ErrPropertyNotFoundWrite)
		}

		spec := booking.PropertySpec{
			ID:                   snap.ID,
			HostID:               snap.HostID,
			MonthlyPriceCents:    snap.MonthlyPriceCents,
			CleaningFeeCents:     snap.CleaningFeeCents,
			SecurityDepositCents: snap.SecurityDepositCents,
			MinimumStayWeeks:     snap.MinimumStayWeeks,
			MaximumStayMonths:    snap.MaximumStayMonths,
			MaxGuests:            snap.MaxGuests,
			IsActive:             snap.IsActive,
		}

		b, derr := booking.NewBooking(services, spec, guestID, stay, req.GuestCount)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		// Friendly pre-check so the common case fails before writing
		// anything. The authoritative check is the reserve count below.
		taken, derr := tx.Calendar().UnavailableDates(ctx, tx.DB(), snap.ID, stay.CheckIn(), stay.CheckOut())
		if derr != nil {
			return derr
		}
		if len(taken) > 0 {
			return ErrDatesUnavailable
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}

		dates := stay.Dates()
		reserved, derr := tx.Calendar().ReserveDates(ctx, tx.DB(), snap.ID, id, dates)
		if derr != nil {
			return derr
		}
		if reserved != int64(len(dates)) {
			// Lost a race after the pre-check; abort everything.
			return ErrDatesUnavailable
		}

		result = &CreateBookingResult{
			BookingID:  id,
			CheckIn:    stay.CheckIn(),
			CheckOut:   stay.CheckOut(),
			Nights:     b.Nights(),
			GuestCount: b.GuestCount(),
			Status:     b.Status(),
			Quote:      b.Quote(),
		}
		created = b
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDatesUnavailable) {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	uc.cache.Invalidate(ctx, created.PropertyID())
	uc.publish(ctx, events.TypeBookingCreated, created)
	return result, nil
}

func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, bookingID, callerID uuid.UUID) error {
	var confirmed *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.loadBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}

		if derr := b.Confirm(callerID, uc.clock.Now()); derr != nil {
			return markBookingError(derr)
		}

		if derr := tx.Bookings().Update(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		confirmed = b
		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, events.TypeBookingConfirmed, confirmed)
	return nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, callerID uuid.UUID, reason string) error {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.loadBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}

		if derr := b.Cancel(callerID, reason, uc.clock.Now()); derr != nil {
			return markBookingError(derr)
		}

		if derr := tx.Bookings().Update(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		// Dates flip back to available so others can book them.
		if derr := tx.Calendar().ReleaseBooking(ctx, tx.DB(), b.PropertyID(), b.ID()); derr != nil {
			return derr
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return err
	}

	metrics.IncBookingCancelled()
	uc.cache.Invalidate(ctx, cancelled.PropertyID())
	uc.publish(ctx, events.TypeBookingCancelled, cancelled)
	return nil
}

func (uc *bookingUseCaseImpl) loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, markNotFound(err, ErrBookingNotFoundWrite)
	}

	stay, err := booking.NewStayRange(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:         snap.ID,
		PropertyID: snap.PropertyID,
		GuestID:    snap.GuestID,
		HostID:     snap.HostID,
		Stay:       stay,
		GuestCount: snap.GuestCount,
		Quote: booking.Quote{
			DailyRate:       booking.NewMoney(snap.DailyRate),
			Subtotal:        booking.NewMoney(snap.Subtotal),
			ServiceFee:      booking.NewMoney(snap.ServiceFee),
			CleaningFee:     booking.NewMoney(snap.CleaningFee),
			SecurityDeposit: booking.NewMoney(snap.Deposit),
			Total:           booking.NewMoney(snap.Total),
		},
		Status:        booking.Status(snap.Status),
		PaymentStatus: booking.PaymentStatus(snap.PaymentStatus),
		CancelledAt:   snap.CancelledAt,
		CreatedAt:     snap.CreatedAt,
	}), nil
}

// publish runs after the transaction committed.
func (uc *bookingUseCaseImpl) publish(ctx context.Context, eventType string, b *booking.Booking) {
	uc.publisher.PublishBookingEvent(context.WithoutCancel(ctx), events.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID(),
		PropertyID: b.PropertyID(),
		GuestID:    b.GuestID(),
		HostID:     b.HostID(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		TotalCents: b.Quote().Total.Cents(),
		OccurredAt: uc.clock.Now(),
	})
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

func markBookingError(err error) error {
	switch {
	case errors.Is(err, booking.ErrNotParticipant), errors.Is(err, booking.ErrNotHost):
		return errs.Mark(err, ErrBookingForbidden)
	case errors.Is(err, booking.ErrAlreadyCancelled), errors.Is(err, booking.ErrCancelledNoConfirm):
		return errs.Mark(err, ErrBookingConflict)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

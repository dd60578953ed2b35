//go:build unit || e2e

package builder

import (
	"time"

	"unistay/internal/domain/booking"
	reqdto "unistay/internal/handler/dto/request"
	"unistay/internal/pkg/clock"
	"unistay/internal/usecase/queries"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	Property   *PropertyBuilder
	GuestID    uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Status     booking.Status
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		Property:   NewPropertyBuilder(),
		GuestID:    uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 4),
		GuestCount: 1,
		Status:     booking.StatusPending,
		Now:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{
		Clock:      clock.NewMockClock(b.Now),
		Calculator: booking.NewStandardPriceCalculator(),
	}
}

func (b *BookingBuilder) Stay() booking.StayRange {
	stay, err := booking.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.Services(), b.Property.BuildSpec(), b.GuestID, stay, b.GuestCount)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	quote := b.quote()
	return &shared.BookingSnapshot{
		ID:            b.ID,
		PropertyID:    b.Property.ID,
		GuestID:       b.GuestID,
		HostID:        b.Property.HostID,
		Status:        string(b.Status),
		PaymentStatus: string(booking.PaymentPending),
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		GuestCount:    b.GuestCount,
		DailyRate:     quote.DailyRate.Cents(),
		Subtotal:      quote.Subtotal.Cents(),
		ServiceFee:    quote.ServiceFee.Cents(),
		CleaningFee:   quote.CleaningFee.Cents(),
		Deposit:       quote.SecurityDeposit.Cents(),
		Total:         quote.Total.Cents(),
		CreatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.Property.ID,
		CheckIn:    b.CheckIn.Format(time.DateOnly),
		CheckOut:   b.CheckOut.Format(time.DateOnly),
		GuestCount: b.GuestCount,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	quote := b.quote()
	return &queries.BookingView{
		ID:                   b.ID,
		PropertyID:           b.Property.ID,
		PropertyTitle:        b.Property.Title,
		PropertyCity:         b.Property.City,
		GuestID:              b.GuestID,
		GuestEmail:           "guest@example.com",
		HostID:               b.Property.HostID,
		CheckIn:              b.CheckIn,
		CheckOut:             b.CheckOut,
		Nights:               int32(b.Stay().Nights()),
		GuestCount:           int32(b.GuestCount),
		DailyRateCents:       quote.DailyRate.Cents(),
		SubtotalCents:        quote.Subtotal.Cents(),
		ServiceFeeCents:      quote.ServiceFee.Cents(),
		CleaningFeeCents:     quote.CleaningFee.Cents(),
		SecurityDepositCents: quote.SecurityDeposit.Cents(),
		TotalCents:           quote.Total.Cents(),
		Status:               string(b.Status),
		PaymentStatus:        string(booking.PaymentPending),
		CreatedAt:            b.Now,
		UpdatedAt:            b.Now,
	}
}

func (b *BookingBuilder) quote() booking.Quote {
	quote, err := booking.NewStandardPriceCalculator().Quote(booking.PriceInputs{
		MonthlyPriceCents:    b.Property.MonthlyPriceCents,
		CleaningFeeCents:     b.Property.CleaningFeeCents,
		SecurityDepositCents: b.Property.SecurityDepositCents,
	}, b.Stay().Nights())
	if err != nil {
		panic(err)
	}
	return quote
}

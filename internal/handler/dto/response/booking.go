package response

import (
	"time"

	"github.com/google/uuid"

	"unistay/internal/usecase/commands"
)

type QuoteResponse struct {
	DailyRateCents       int64 `json:"daily_rate_cents"`
	SubtotalCents        int64 `json:"subtotal_cents"`
	ServiceFeeCents      int64 `json:"service_fee_cents"`
	CleaningFeeCents     int64 `json:"cleaning_fee_cents"`
	SecurityDepositCents int64 `json:"security_deposit_cents"`
	TotalCents           int64 `json:"total_cents"`
}

type BookingCreatedResponse struct {
	BookingID  uuid.UUID     `json:"booking_id"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	Nights     int           `json:"nights"`
	GuestCount int           `json:"guest_count"`
	Status     string        `json:"status"`
	Quote      QuoteResponse `json:"quote"`
}

func FromBookingCreated(r *commands.CreateBookingResult) *BookingCreatedResponse {
	q := r.Quote
	return &BookingCreatedResponse{
		BookingID:  r.BookingID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Nights:     r.Nights,
		GuestCount: r.GuestCount,
		Status:     r.Status.String(),
		Quote: QuoteResponse{
			DailyRateCents:       q.DailyRate.Cents(),
			SubtotalCents:        q.Subtotal.Cents(),
			ServiceFeeCents:      q.ServiceFee.Cents(),
			CleaningFeeCents:     q.CleaningFee.Cents(),
			SecurityDepositCents: q.SecurityDeposit.Cents(),
			TotalCents:           q.Total.Cents(),
		},
	}
}

package repository

import (
	"context"

	"unistay/internal/domain/booking"
	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	quote := b.Quote()
	_, err := dbtx.Exec(ctx, `
		INSERT INTO bookings (
			id, property_id, guest_id, host_id,
			check_in, check_out, nights, guest_count,
			daily_rate_cents, subtotal_cents, service_fee_cents,
			cleaning_fee_cents, security_deposit_cents, total_cents,
			status, payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		b.ID(), b.PropertyID(), b.GuestID(), b.HostID(),
		b.Stay().CheckIn(), b.Stay().CheckOut(), b.Nights(), b.GuestCount(),
		quote.DailyRate.Cents(), quote.Subtotal.Cents(), quote.ServiceFee.Cents(),
		quote.CleaningFee.Cents(), quote.SecurityDeposit.Cents(), quote.Total.Cents(),
		string(b.Status()), string(b.PaymentStatus()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return b.ID(), nil
}

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings
		SET status = $2,
			payment_status = $3,
			cancelled_by = $4,
			cancelled_at = $5,
			cancellation_reason = $6,
			updated_at = now()
		WHERE id = $1`,
		b.ID(), string(b.Status()), string(b.PaymentStatus()),
		b.CancelledBy(), b.CancelledAt(), b.CancellationReason(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

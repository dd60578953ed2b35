package readstore

import (
	"context"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/pkg/pgconv"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads serves the minimal snapshot lookups write operations need.
// It runs against whatever DBTX it was built with, so the same code reads
// inside a transaction or straight off the pool.
type commandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &commandReads{dbtx: dbtx}
}

func (r *commandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	var s shared.PropertySnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, host_id, title, city,
			monthly_price_cents, cleaning_fee_cents, security_deposit_cents,
			minimum_stay_weeks, maximum_stay_months, max_guests, is_active
		FROM properties WHERE id = $1`,
		id,
	).Scan(
		&s.ID, &s.HostID, &s.Title, &s.City,
		&s.MonthlyPriceCents, &s.CleaningFeeCents, &s.SecurityDepositCents,
		&s.MinimumStayWeeks, &s.MaximumStayMonths, &s.MaxGuests, &s.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return &s, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var s shared.BookingSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, property_id, guest_id, host_id, status, payment_status,
			check_in, check_out, guest_count,
			daily_rate_cents, subtotal_cents, service_fee_cents,
			cleaning_fee_cents, security_deposit_cents, total_cents,
			cancelled_at, created_at
		FROM bookings WHERE id = $1`,
		id,
	).Scan(
		&s.ID, &s.PropertyID, &s.GuestID, &s.HostID, &s.Status, &s.PaymentStatus,
		&s.CheckIn, &s.CheckOut, &s.GuestCount,
		&s.DailyRate, &s.Subtotal, &s.ServiceFee,
		&s.CleaningFee, &s.Deposit, &s.Total,
		&s.CancelledAt, &s.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &s, nil
}

func (r *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	var s shared.ReviewSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, booking_id, property_id, guest_id, rating, comment, created_at
		FROM reviews WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.BookingID, &s.PropertyID, &s.GuestID, &s.Rating, &s.Comment, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}
	return &s, nil
}

func (r *commandReads) ConversationByID(ctx context.Context, id uuid.UUID) (*shared.ConversationSnapshot, error) {
	var s shared.ConversationSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, property_id, guest_id, host_id
		FROM conversations WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.PropertyID, &s.GuestID, &s.HostID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conversation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find conversation by ID", err)
	}
	return &s, nil
}

package readstore

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/pkg/pgconv"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error)
	FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error)
	FindByHostFirstPage(ctx context.Context, hostID uuid.UUID, limit int32) ([]*queries.BookingListItem, error)
	FindByHostKeyset(ctx context.Context, hostID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error)
	FindByParticipantFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error)
	FindByParticipantKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error)
}

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

const bookingViewSelect = `
	SELECT b.id, b.property_id, p.title, p.city,
		b.guest_id, u.email, b.host_id,
		b.check_in, b.check_out, b.nights, b.guest_count,
		b.daily_rate_cents, b.subtotal_cents, b.service_fee_cents,
		b.cleaning_fee_cents, b.security_deposit_cents, b.total_cents,
		b.status, b.payment_status,
		b.cancelled_by, b.cancelled_at, b.cancellation_reason,
		b.created_at, b.updated_at
	FROM bookings b
	JOIN properties p ON p.id = b.property_id
	JOIN users u ON u.id = b.guest_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.dbtx.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id).Scan(
		&v.ID, &v.PropertyID, &v.PropertyTitle, &v.PropertyCity,
		&v.GuestID, &v.GuestEmail, &v.HostID,
		&v.CheckIn, &v.CheckOut, &v.Nights, &v.GuestCount,
		&v.DailyRateCents, &v.SubtotalCents, &v.ServiceFeeCents,
		&v.CleaningFeeCents, &v.SecurityDepositCents, &v.TotalCents,
		&v.Status, &v.PaymentStatus,
		&v.CancelledBy, &v.CancelledAt, &v.CancellationReason,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingListSelect = `
	SELECT b.id, b.property_id, p.title,
		b.check_in, b.check_out, b.total_cents, b.status, b.created_at
	FROM bookings b
	JOIN properties p ON p.id = b.property_id`

func (r *BookingReadStore) FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.dbtx.Query(ctx, bookingListSelect+`
		WHERE b.guest_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2`,
		guestID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find guest bookings first page", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.dbtx.Query(ctx, bookingListSelect+`
		WHERE b.guest_id = $1 AND (b.created_at, b.id) < ($2, $3)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $4`,
		guestID, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find guest bookings keyset", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByHostFirstPage(ctx context.Context, hostID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.dbtx.Query(ctx, bookingListSelect+`
		WHERE b.host_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2`,
		hostID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find host bookings first page", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByHostKeyset(ctx context.Context, hostID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.dbtx.Query(ctx, bookingListSelect+`
		WHERE b.host_id = $1 AND (b.created_at, b.id) < ($2, $3)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $4`,
		hostID, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find host bookings keyset", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByParticipantFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.dbtx.Query(ctx, bookingListSelect+`
		WHERE (b.guest_id = $1 OR b.host_id = $1)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find participant bookings first page", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByParticipantKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.dbtx.Query(ctx, bookingListSelect+`
		WHERE (b.guest_id = $1 OR b.host_id = $1) AND (b.created_at, b.id) < ($2, $3)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $4`,
		userID, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find participant bookings keyset", err)
	}
	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var it queries.BookingListItem
		if err := rows.Scan(
			&it.ID, &it.PropertyID, &it.PropertyTitle,
			&it.CheckIn, &it.CheckOut, &it.TotalCents, &it.Status, &it.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list rows", err)
	}
	return items, nil
}

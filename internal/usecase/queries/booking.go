package queries

import (
	"context"
	"time"

	"unistay/internal/domain/user"
	"unistay/internal/infra"
	"unistay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrInvalidCursor   = errs.New("invalid cursor")
)

type BookingList struct {
	Items      []*BookingListItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id, callerID uuid.UUID, callerRole string) (*BookingView, error)
	ListGuestBookings(ctx context.Context, guestID uuid.UUID, limit int, after string) (*BookingList, error)
	ListHostBookings(ctx context.Context, hostID uuid.UUID, limit int, after string) (*BookingList, error)
	ListParticipantBookings(ctx context.Context, userID uuid.UUID, limit int, after string) (*BookingList, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByHostFirstPage(ctx context.Context, hostID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByHostKeyset(ctx context.Context, hostID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByParticipantFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByParticipantKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

// GetBooking returns the booking only to its guest, its host, or an admin.
// Anyone else gets an access error, not a not-found, since the ID was valid.
func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, callerID uuid.UUID, callerRole string) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if callerRole != user.RoleAdmin.String() && callerID != view.GuestID && callerID != view.HostID {
		return nil, ErrBookingAccess
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListGuestBookings(ctx context.Context, guestID uuid.UUID, limit int, after string) (*BookingList, error) {
	return q.list(ctx, guestID, limit, after,
		q.readStore.FindByGuestFirstPage, q.readStore.FindByGuestKeyset)
}

func (q *bookingQueriesImpl) ListHostBookings(ctx context.Context, hostID uuid.UUID, limit int, after string) (*BookingList, error) {
	return q.list(ctx, hostID, limit, after,
		q.readStore.FindByHostFirstPage, q.readStore.FindByHostKeyset)
}

// ListParticipantBookings merges both sides: every booking the user is on,
// whether as the travelling guest or as the listing's host.
func (q *bookingQueriesImpl) ListParticipantBookings(ctx context.Context, userID uuid.UUID, limit int, after string) (*BookingList, error) {
	return q.list(ctx, userID, limit, after,
		q.readStore.FindByParticipantFirstPage, q.readStore.FindByParticipantKeyset)
}

func (q *bookingQueriesImpl) list(
	ctx context.Context,
	ownerID uuid.UUID,
	limit int,
	after string,
	firstPage func(context.Context, uuid.UUID, int32) ([]*BookingListItem, error),
	keyset func(context.Context, uuid.UUID, time.Time, uuid.UUID, int32) ([]*BookingListItem, error),
) (*BookingList, error) {
	validLimit := int32(ValidateLimit(limit)) // #nosec G115 -- bounded by MaxListLimit

	var items []*BookingListItem
	var err error
	if after == "" {
		items, err = firstPage(ctx, ownerID, validLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after)
		if decodeErr != nil {
			return nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = keyset(ctx, ownerID, lastCreatedAt, lastID, validLimit)
	}
	if err != nil {
		return nil, err
	}

	list := &BookingList{Items: items}
	if len(items) == int(validLimit) {
		last := items[len(items)-1]
		list.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return list, nil
}

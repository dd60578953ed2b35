package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	propertyID uuid.UUID
	guestID    uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(services *Services, guestID, propertyID, bookingID uuid.UUID, rating Rating, comment Comment) (*Review, error) {
	now := services.Clock.Now()
	if err := services.EligibilityChecker.CanPostReview(EligibilityInput{
		BookingID:  bookingID,
		GuestID:    guestID,
		PropertyID: propertyID,
		Now:        now,
	}); err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		bookingID:  bookingID,
		propertyID: propertyID,
		guestID:    guestID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReview(id, guestID, propertyID, bookingID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:         id,
		bookingID:  bookingID,
		propertyID: propertyID,
		guestID:    guestID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Edit replaces the rating and comment. Eligibility was settled when the
// review was posted; editing only revalidates the new values.
func (r *Review) Edit(rating Rating, comment Comment, now time.Time) {
	r.rating = rating
	r.comment = comment
	r.updatedAt = now
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) BookingID() uuid.UUID  { return r.bookingID }
func (r *Review) PropertyID() uuid.UUID { return r.propertyID }
func (r *Review) GuestID() uuid.UUID    { return r.guestID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }

package commands

import (
	"context"
	"errors"

	"unistay/internal/domain/booking"
	domreview "unistay/internal/domain/review"
	"unistay/internal/domain/user"
	"unistay/internal/infra"
	"unistay/internal/pkg/clock"
	"unistay/internal/pkg/errs"
	"unistay/internal/pkg/patch"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateReview     = errs.New("duplicate review for booking")
	ErrReviewNotFoundWrite = errs.New("review not found")
	ErrReviewForbidden     = errs.New("caller may not act on this review")
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type UpdateReviewRequest struct {
	ReviewID uuid.UUID
	Rating   *int
	Comment  *string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, guestID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, req UpdateReviewRequest, callerID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID, callerID uuid.UUID, callerRole user.Role) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, guestID uuid.UUID) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingSnap, derr := tx.Reads().BookingByID(ctx, req.BookingID)
		if derr != nil {
			return markNotFound(derr, ErrBookingNotFoundWrite)
		}

		services := &domreview.Services{
			Clock:              uc.clock,
			EligibilityChecker: &bookingEligibility{snap: bookingSnap},
		}

		rev, derr := domreview.NewReview(services, guestID, bookingSnap.PropertyID, req.BookingID, rating, comment)
		if derr != nil {
			return markReviewError(derr)
		}

		if _, derr = tx.Reviews().Create(ctx, tx.DB(), rev); derr != nil {
			// Unique index on booking_id enforces one review per stay.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateReview)
			}
			return derr
		}
		createdID = rev.ID()
		return tx.RatingStats().RecalcPropertyRatingStats(ctx, tx.DB(), bookingSnap.PropertyID)
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, req UpdateReviewRequest, callerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReviewByID(ctx, req.ReviewID)
		if err != nil {
			return markNotFound(err, ErrReviewNotFoundWrite)
		}
		if snap.GuestID != callerID {
			return errs.Mark(errs.New("review belongs to another guest"), ErrReviewForbidden)
		}

		rating, err := domreview.NewRating(patch.Coalesce(req.Rating, snap.Rating))
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		comment, err := domreview.NewComment(patch.Coalesce(req.Comment, snap.Comment))
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		rev := domreview.ReconstructReview(snap.ID, snap.GuestID, snap.PropertyID, snap.BookingID, rating, comment, snap.CreatedAt, snap.CreatedAt)
		rev.Edit(rating, comment, uc.clock.Now())

		if err = tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return markNotFound(err, ErrReviewNotFoundWrite)
		}
		return tx.RatingStats().RecalcPropertyRatingStats(ctx, tx.DB(), snap.PropertyID)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID, callerID uuid.UUID, callerRole user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReviewByID(ctx, reviewID)
		if err != nil {
			return markNotFound(err, ErrReviewNotFoundWrite)
		}
		if snap.GuestID != callerID && callerRole != user.RoleAdmin {
			return errs.Mark(errs.New("review belongs to another guest"), ErrReviewForbidden)
		}

		if err = tx.Reviews().Delete(ctx, tx.DB(), reviewID); err != nil {
			return markNotFound(err, ErrReviewNotFoundWrite)
		}
		return tx.RatingStats().RecalcPropertyRatingStats(ctx, tx.DB(), snap.PropertyID)
	})
}

// bookingEligibility checks the review request against the booking row read
// in the same transaction.
type bookingEligibility struct {
	snap *shared.BookingSnapshot
}

func (e *bookingEligibility) CanPostReview(input domreview.EligibilityInput) error {
	if e.snap.GuestID != input.GuestID {
		return domreview.ErrBookingNotEligible
	}
	if e.snap.PropertyID != input.PropertyID {
		return domreview.ErrBookingNotEligible
	}
	if booking.Status(e.snap.Status) != booking.StatusConfirmed {
		return domreview.ErrBookingNotEligible
	}
	if input.Now.Before(e.snap.CheckOut) {
		return domreview.ErrBookingNotEligible
	}
	return nil
}

func markReviewError(err error) error {
	if errors.Is(err, domreview.ErrBookingNotEligible) {
		return errs.Mark(err, ErrBookingForbidden)
	}
	return errs.Mark(err, ErrDomainValidation)
}

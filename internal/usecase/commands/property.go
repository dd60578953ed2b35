package commands

import (
	"context"
	"time"

	"unistay/internal/domain/property"
	"unistay/internal/pkg/clock"
	"unistay/internal/pkg/errs"
	"unistay/internal/pkg/patch"
	"unistay/internal/usecase/queries"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyForbidden = errs.New("caller does not own this property")
	ErrDatesBlocked      = errs.New("some dates could not be blocked")
)

type CreatePropertyRequest struct {
	Title                string
	Description          string
	City                 string
	MonthlyPriceCents    int64
	CleaningFeeCents     int64
	SecurityDepositCents int64
	MinimumStayWeeks     int
	MaximumStayMonths    int
	Bedrooms             int
	MaxGuests            int
}

// UpdatePropertyRequest carries only the fields the caller wants to change.
type UpdatePropertyRequest struct {
	Title                *string
	Description          *string
	City                 *string
	MonthlyPriceCents    *int64
	CleaningFeeCents     *int64
	SecurityDepositCents *int64
	MinimumStayWeeks     *int
	MaximumStayMonths    *int
	Bedrooms             *int
	MaxGuests            *int
}

type CreatePropertyResult struct {
	PropertyID uuid.UUID
}

type PropertyCommands interface {
	CreateProperty(ctx context.Context, req CreatePropertyRequest, hostID uuid.UUID) (*CreatePropertyResult, error)
	UpdateProperty(ctx context.Context, propertyID uuid.UUID, req UpdatePropertyRequest, callerID uuid.UUID) error
	DeactivateProperty(ctx context.Context, propertyID, callerID uuid.UUID) error
	BlockDates(ctx context.Context, propertyID, callerID uuid.UUID, dates []time.Time) error
	UnblockDates(ctx context.Context, propertyID, callerID uuid.UUID, dates []time.Time) error
}

type propertyUseCaseImpl struct {
	uow       shared.UnitOfWork
	readStore queries.PropertyReadStore
	clock     clock.Clock
	cache     CacheInvalidator
}

func NewPropertyUseCase(uow shared.UnitOfWork, readStore queries.PropertyReadStore, clk clock.Clock, cache CacheInvalidator) PropertyCommands {
	return &propertyUseCaseImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clk,
		cache:     cache,
	}
}

func (uc *propertyUseCaseImpl) CreateProperty(ctx context.Context, req CreatePropertyRequest, hostID uuid.UUID) (*CreatePropertyResult, error) {
	prop, err := property.NewProperty(property.NewPropertyParams{
		HostID:               hostID,
		Title:                req.Title,
		Description:          req.Description,
		City:                 req.City,
		MonthlyPriceCents:    req.MonthlyPriceCents,
		CleaningFeeCents:     req.CleaningFeeCents,
		SecurityDepositCents: req.SecurityDepositCents,
		MinimumStayWeeks:     req.MinimumStayWeeks,
		MaximumStayMonths:    req.MaximumStayMonths,
		Bedrooms:             req.Bedrooms,
		MaxGuests:            req.MaxGuests,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Properties().Create(ctx, tx.DB(), prop)
		return derr
	})
	if err != nil {
		return nil, err
	}

	return &CreatePropertyResult{PropertyID: prop.ID()}, nil
}

func (uc *propertyUseCaseImpl) UpdateProperty(ctx context.Context, propertyID uuid.UUID, req UpdatePropertyRequest, callerID uuid.UUID) error {
	view, err := uc.readStore.FindByID(ctx, propertyID)
	if err != nil {
		return markNotFound(err, ErrPropertyNotFoundWrite)
	}
	if view.HostID != callerID {
		return ErrPropertyForbidden
	}

	prop := reconstructFromView(view)
	err = prop.UpdateDetails(property.NewPropertyParams{
		HostID:               view.HostID,
		Title:                patch.Coalesce(req.Title, view.Title),
		Description:          patch.Coalesce(req.Description, view.Description),
		City:                 patch.Coalesce(req.City, view.City),
		MonthlyPriceCents:    patch.Coalesce(req.MonthlyPriceCents, view.MonthlyPriceCents),
		CleaningFeeCents:     patch.Coalesce(req.CleaningFeeCents, view.CleaningFeeCents),
		SecurityDepositCents: patch.Coalesce(req.SecurityDepositCents, view.SecurityDepositCents),
		MinimumStayWeeks:     patch.Coalesce(req.MinimumStayWeeks, int(view.MinimumStayWeeks)),
		MaximumStayMonths:    patch.Coalesce(req.MaximumStayMonths, int(view.MaximumStayMonths)),
		Bedrooms:             patch.Coalesce(req.Bedrooms, int(view.Bedrooms)),
		MaxGuests:            patch.Coalesce(req.MaxGuests, int(view.MaxGuests)),
	}, uc.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Properties().Update(ctx, tx.DB(), prop)
	})
}

func (uc *propertyUseCaseImpl) DeactivateProperty(ctx context.Context, propertyID, callerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PropertyByID(ctx, propertyID)
		if derr != nil {
			return markNotFound(derr, ErrPropertyNotFoundWrite)
		}
		if snap.HostID != callerID {
			return ErrPropertyForbidden
		}
		return tx.Properties().SetActive(ctx, tx.DB(), propertyID, false)
	})
}

// BlockDates lets a host take dates off the market. Dates already booked
// are not blockable; the whole request fails so the host sees the clash.
func (uc *propertyUseCaseImpl) BlockDates(ctx context.Context, propertyID, callerID uuid.UUID, dates []time.Time) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PropertyByID(ctx, propertyID)
		if derr != nil {
			return markNotFound(derr, ErrPropertyNotFoundWrite)
		}
		if snap.HostID != callerID {
			return ErrPropertyForbidden
		}

		blocked, derr := tx.Calendar().BlockDates(ctx, tx.DB(), propertyID, dates)
		if derr != nil {
			return derr
		}
		if blocked != int64(len(dates)) {
			return ErrDatesBlocked
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, propertyID)
	return nil
}

func (uc *propertyUseCaseImpl) UnblockDates(ctx context.Context, propertyID, callerID uuid.UUID, dates []time.Time) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PropertyByID(ctx, propertyID)
		if derr != nil {
			return markNotFound(derr, ErrPropertyNotFoundWrite)
		}
		if snap.HostID != callerID {
			return ErrPropertyForbidden
		}
		return tx.Calendar().UnblockDates(ctx, tx.DB(), propertyID, dates)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, propertyID)
	return nil
}

func reconstructFromView(view *queries.PropertyView) *property.Property {
	return property.ReconstructProperty(property.ReconstructParams{
		ID:                   view.ID,
		HostID:               view.HostID,
		Title:                view.Title,
		Description:          view.Description,
		City:                 view.City,
		MonthlyPriceCents:    view.MonthlyPriceCents,
		CleaningFeeCents:     view.CleaningFeeCents,
		SecurityDepositCents: view.SecurityDepositCents,
		MinimumStayWeeks:     int(view.MinimumStayWeeks),
		MaximumStayMonths:    int(view.MaximumStayMonths),
		Bedrooms:             int(view.Bedrooms),
		MaxGuests:            int(view.MaxGuests),
		IsActive:             view.IsActive,
		CreatedAt:            view.CreatedAt,
		UpdatedAt:            view.UpdatedAt,
	})
}

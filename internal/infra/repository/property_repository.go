package repository

import (
	"context"

	"unistay/internal/domain/property"
	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyRepository struct{}

func NewPropertyRepository() shared.PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) Create(ctx context.Context, dbtx db.DBTX, p *property.Property) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO properties (
			id, host_id, title, description, city,
			monthly_price_cents, cleaning_fee_cents, security_deposit_cents,
			minimum_stay_weeks, maximum_stay_months, bedrooms, max_guests, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID(), p.HostID(), p.Title(), p.Description(), p.City(),
		p.MonthlyPriceCents(), p.CleaningFeeCents(), p.SecurityDepositCents(),
		p.MinimumStayWeeks(), p.MaximumStayMonths(), p.Bedrooms(), p.MaxGuests(), p.IsActive(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create property", err)
	}
	return p.ID(), nil
}

func (r *PropertyRepository) Update(ctx context.Context, dbtx db.DBTX, p *property.Property) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE properties
		SET title = $2,
			description = $3,
			city = $4,
			monthly_price_cents = $5,
			cleaning_fee_cents = $6,
			security_deposit_cents = $7,
			minimum_stay_weeks = $8,
			maximum_stay_months = $9,
			bedrooms = $10,
			max_guests = $11,
			is_active = $12,
			updated_at = now()
		WHERE id = $1`,
		p.ID(), p.Title(), p.Description(), p.City(),
		p.MonthlyPriceCents(), p.CleaningFeeCents(), p.SecurityDepositCents(),
		p.MinimumStayWeeks(), p.MaximumStayMonths(), p.Bedrooms(), p.MaxGuests(), p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) SetActive(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, active bool) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE properties SET is_active = $2, updated_at = now() WHERE id = $1`,
		propertyID, active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set property active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

//go:build unit || e2e

package builder

import (
	"time"

	"unistay/internal/domain/booking"
	domproperty "unistay/internal/domain/property"
	reqdto "unistay/internal/handler/dto/request"
	"unistay/internal/usecase/queries"
	"unistay/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID                   uuid.UUID
	HostID               uuid.UUID
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
	IsActive             bool
	CreatedAt            time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:                   uuid.New(),
		HostID:               uuid.New(),
		Title:                "Sunny studio near campus",
		Description:          "A bright studio five minutes from the university.",
		City:                 "Leiden",
		MonthlyPriceCents:    100000,
		CleaningFeeCents:     1600,
		SecurityDepositCents: 50000,
		MinimumStayWeeks:     0,
		MaximumStayMonths:    12,
		Bedrooms:             1,
		MaxGuests:            2,
		IsActive:             true,
		CreatedAt:            time.Now(),
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) BuildDomain() (*domproperty.Property, error) {
	return domproperty.NewProperty(b.buildParams())
}

func (b *PropertyBuilder) buildParams() domproperty.NewPropertyParams {
	return domproperty.NewPropertyParams{
		HostID:               b.HostID,
		Title:                b.Title,
		Description:          b.Description,
		City:                 b.City,
		MonthlyPriceCents:    b.MonthlyPriceCents,
		CleaningFeeCents:     b.CleaningFeeCents,
		SecurityDepositCents: b.SecurityDepositCents,
		MinimumStayWeeks:     b.MinimumStayWeeks,
		MaximumStayMonths:    b.MaximumStayMonths,
		Bedrooms:             b.Bedrooms,
		MaxGuests:            b.MaxGuests,
	}
}

func (b *PropertyBuilder) BuildSpec() booking.PropertySpec {
	return booking.PropertySpec{
		ID:                   b.ID,
		HostID:               b.HostID,
		MonthlyPriceCents:    b.MonthlyPriceCents,
		CleaningFeeCents:     b.CleaningFeeCents,
		SecurityDepositCents: b.SecurityDepositCents,
		MinimumStayWeeks:     b.MinimumStayWeeks,
		MaximumStayMonths:    b.MaximumStayMonths,
		MaxGuests:            b.MaxGuests,
		IsActive:             b.IsActive,
	}
}

func (b *PropertyBuilder) BuildSnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:                   b.ID,
		HostID:               b.HostID,
		Title:                b.Title,
		City:                 b.City,
		MonthlyPriceCents:    b.MonthlyPriceCents,
		CleaningFeeCents:     b.CleaningFeeCents,
		SecurityDepositCents: b.SecurityDepositCents,
		MinimumStayWeeks:     b.MinimumStayWeeks,
		MaximumStayMonths:    b.MaximumStayMonths,
		MaxGuests:            b.MaxGuests,
		IsActive:             b.IsActive,
	}
}

func (b *PropertyBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	return reqdto.CreatePropertyRequest{
		Title:                b.Title,
		Description:          b.Description,
		City:                 b.City,
		MonthlyPriceCents:    b.MonthlyPriceCents,
		CleaningFeeCents:     b.CleaningFeeCents,
		SecurityDepositCents: b.SecurityDepositCents,
		MinimumStayWeeks:     b.MinimumStayWeeks,
		MaximumStayMonths:    b.MaximumStayMonths,
		Bedrooms:             b.Bedrooms,
		MaxGuests:            b.MaxGuests,
	}
}

func (b *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:                   b.ID,
		HostID:               b.HostID,
		Title:                b.Title,
		Description:          b.Description,
		City:                 b.City,
		MonthlyPriceCents:    b.MonthlyPriceCents,
		CleaningFeeCents:     b.CleaningFeeCents,
		SecurityDepositCents: b.SecurityDepositCents,
		MinimumStayWeeks:     int32(b.MinimumStayWeeks),
		MaximumStayMonths:    int32(b.MaximumStayMonths),
		Bedrooms:             int32(b.Bedrooms),
		MaxGuests:            int32(b.MaxGuests),
		IsActive:             b.IsActive,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.CreatedAt,
	}
}

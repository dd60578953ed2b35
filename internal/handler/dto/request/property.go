package request

import (
	"unistay/internal/usecase/commands"
)

type CreatePropertyRequest struct {
	Title                string `json:"title" binding:"required,max=200"`
	Description          string `json:"description" binding:"max=5000"`
	City                 string `json:"city" binding:"required,max=100"`
	MonthlyPriceCents    int64  `json:"monthly_price_cents" binding:"required,min=0"`
	CleaningFeeCents     int64  `json:"cleaning_fee_cents" binding:"min=0"`
	SecurityDepositCents int64  `json:"security_deposit_cents" binding:"min=0"`
	MinimumStayWeeks     int    `json:"minimum_stay_weeks" binding:"min=0"`
	MaximumStayMonths    int    `json:"maximum_stay_months" binding:"min=0"`
	Bedrooms             int    `json:"bedrooms" binding:"required,min=1"`
	MaxGuests            int    `json:"max_guests" binding:"required,min=1"`
}

func (r CreatePropertyRequest) ToCommand() commands.CreatePropertyRequest {
	return commands.CreatePropertyRequest{
		Title:                r.Title,
		Description:          r.Description,
		City:                 r.City,
		MonthlyPriceCents:    r.MonthlyPriceCents,
		CleaningFeeCents:     r.CleaningFeeCents,
		SecurityDepositCents: r.SecurityDepositCents,
		MinimumStayWeeks:     r.MinimumStayWeeks,
		MaximumStayMonths:    r.MaximumStayMonths,
		Bedrooms:             r.Bedrooms,
		MaxGuests:            r.MaxGuests,
	}
}

type UpdatePropertyRequest struct {
	Title                *string `json:"title,omitempty"`
	Description          *string `json:"description,omitempty"`
	City                 *string `json:"city,omitempty"`
	MonthlyPriceCents    *int64  `json:"monthly_price_cents,omitempty"`
	CleaningFeeCents     *int64  `json:"cleaning_fee_cents,omitempty"`
	SecurityDepositCents *int64  `json:"security_deposit_cents,omitempty"`
	MinimumStayWeeks     *int    `json:"minimum_stay_weeks,omitempty"`
	MaximumStayMonths    *int    `json:"maximum_stay_months,omitempty"`
	Bedrooms             *int    `json:"bedrooms,omitempty"`
	MaxGuests            *int    `json:"max_guests,omitempty"`
}

func (r UpdatePropertyRequest) ToCommand() commands.UpdatePropertyRequest {
	return commands.UpdatePropertyRequest{
		Title:                r.Title,
		Description:          r.Description,
		City:                 r.City,
		MonthlyPriceCents:    r.MonthlyPriceCents,
		CleaningFeeCents:     r.CleaningFeeCents,
		SecurityDepositCents: r.SecurityDepositCents,
		MinimumStayWeeks:     r.MinimumStayWeeks,
		MaximumStayMonths:    r.MaximumStayMonths,
		Bedrooms:             r.Bedrooms,
		MaxGuests:            r.MaxGuests,
	}
}

type CalendarDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1,max=366"`
}

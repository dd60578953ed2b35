package request

import (
	"time"

	"github.com/google/uuid"

	"unistay/internal/usecase/commands"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	GuestCount int       `json:"guest_count" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	var checkIn, checkOut time.Time
	var err error
	if checkIn, err = ParseDate(r.CheckIn); err != nil {
		return commands.CreateBookingRequest{}, err
	}
	if checkOut, err = ParseDate(r.CheckOut); err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
	}, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

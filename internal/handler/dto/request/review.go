package request

import (
	"github.com/google/uuid"

	"unistay/internal/usecase/commands"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=2000"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

func (r UpdateReviewRequest) ToCommand(reviewID uuid.UUID) commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{
		ReviewID: reviewID,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}

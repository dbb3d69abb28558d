package request

import (
	"github.com/google/uuid"
)

type UpsertReviewRequest struct {
	ClubID  uuid.UUID `json:"club_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"required,max=1000"`
}

type ReviewClubQuery struct {
	ClubID uuid.UUID `form:"club_id" binding:"required"`
}

package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	PlayerID  uuid.UUID `json:"player_id"`
	ClubID    uuid.UUID `json:"club_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewEligibilityResponse struct {
	ClubID    uuid.UUID `json:"club_id"`
	CanReview bool      `json:"can_review"`
}

func FromReviewView(view *queries.ReviewView) *ReviewResponse {
	var resp ReviewResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(views))
	for _, view := range views {
		result = append(result, FromReviewView(view))
	}
	return result
}

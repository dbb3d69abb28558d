package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID                uuid.UUID `json:"id"`
	ClubID            uuid.UUID `json:"club_id"`
	Name              string    `json:"name"`
	CourtType         string    `json:"court_type"`
	Ground            *string   `json:"ground,omitempty"`
	HeightCm          *int32    `json:"height_cm,omitempty"`
	Lights            *bool     `json:"lights,omitempty"`
	PriceCentsPerHour *int64    `json:"price_cents_per_hour,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromCourtView(view *queries.CourtView) *CourtResponse {
	var resp CourtResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCourtViews(views []*queries.CourtView) []*CourtResponse {
	result := make([]*CourtResponse, 0, len(views))
	for _, view := range views {
		result = append(result, FromCourtView(view))
	}
	return result
}

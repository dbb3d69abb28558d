package request

import (
	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CourtRequest struct {
	ID                *uuid.UUID `json:"id,omitempty"`
	Name              string     `json:"name" binding:"required"`
	CourtType         string     `json:"court_type" binding:"required,oneof=indoor outdoor"`
	Ground            *string    `json:"ground,omitempty"`
	HeightCm          *int32     `json:"height_cm,omitempty"`
	Lights            *bool      `json:"lights,omitempty"`
	PriceCentsPerHour *int64     `json:"price_cents_per_hour,omitempty" binding:"omitempty,min=0"`
}

// ReplaceCourtsRequest is the club's whole catalog, submitted at once.
type ReplaceCourtsRequest struct {
	Courts []CourtRequest `json:"courts" binding:"required,dive"`
}

func (r ReplaceCourtsRequest) ToSpecs() []commands.CourtSpec {
	specs := make([]commands.CourtSpec, 0, len(r.Courts))
	for _, c := range r.Courts {
		spec := commands.CourtSpec{
			Name:              c.Name,
			CourtType:         c.CourtType,
			Ground:            c.Ground,
			HeightCm:          c.HeightCm,
			Lights:            c.Lights,
			PriceCentsPerHour: c.PriceCentsPerHour,
		}
		if c.ID != nil {
			spec.ID = *c.ID
		}
		specs = append(specs, spec)
	}
	return specs
}

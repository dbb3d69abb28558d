//go:build unit || e2e

package builder

import (
	"time"

	domcourt "courtbook/internal/domain/court"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtBuilder struct {
	ID                uuid.UUID
	ClubID            uuid.UUID
	Name              string
	CourtType         string
	Ground            *string
	HeightCm          *int32
	Lights            *bool
	PriceCentsPerHour *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewCourtBuilder() *CourtBuilder {
	ground := "clay"
	price := int64(2000)
	return &CourtBuilder{
		ID:                uuid.New(),
		ClubID:            uuid.New(),
		Name:              "Court 1",
		CourtType:         string(domcourt.TypeOutdoor),
		Ground:            &ground,
		PriceCentsPerHour: &price,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
}

func (b *CourtBuilder) WithClub(clubID uuid.UUID) *CourtBuilder {
	b.ClubID = clubID
	return b
}

func (b *CourtBuilder) Indoor() *CourtBuilder {
	b.CourtType = string(domcourt.TypeIndoor)
	b.Lights = nil
	return b
}

func (b *CourtBuilder) WithoutPrice() *CourtBuilder {
	b.PriceCentsPerHour = nil
	return b
}

func (b *CourtBuilder) BuildDomain() (*domcourt.Court, error) {
	return domcourt.NewCourt(
		b.ID, b.ClubID, b.Name, domcourt.Type(b.CourtType),
		b.Ground, b.HeightCm, b.Lights, b.PriceCentsPerHour,
	)
}

func (b *CourtBuilder) BuildView() *queries.CourtView {
	return &queries.CourtView{
		ID:                b.ID,
		ClubID:            b.ClubID,
		Name:              b.Name,
		CourtType:         b.CourtType,
		Ground:            b.Ground,
		HeightCm:          b.HeightCm,
		Lights:            b.Lights,
		PriceCentsPerHour: b.PriceCentsPerHour,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

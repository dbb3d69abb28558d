//go:build unit || e2e

package builder

import (
	"time"

	domreview "courtbook/internal/domain/review"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	PlayerID  uuid.UUID
	ClubID    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:        uuid.New(),
		PlayerID:  uuid.New(),
		ClubID:    uuid.New(),
		Rating:    4,
		Comment:   "Great courts, friendly staff",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (b *ReviewBuilder) WithPlayer(playerID uuid.UUID) *ReviewBuilder {
	b.PlayerID = playerID
	return b
}

func (b *ReviewBuilder) WithClub(clubID uuid.UUID) *ReviewBuilder {
	b.ClubID = clubID
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.PlayerID, b.ClubID, b.Rating, b.Comment)
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        b.ID,
		PlayerID:  b.PlayerID,
		ClubID:    b.ClubID,
		Rating:    int32(b.Rating),
		Comment:   b.Comment,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BuildUpsertRequestMap is the JSON body for PUT /api/reviews.
func (b *ReviewBuilder) BuildUpsertRequestMap() map[string]any {
	return map[string]any{
		"club_id": b.ClubID.String(),
		"rating":  b.Rating,
		"comment": b.Comment,
	}
}

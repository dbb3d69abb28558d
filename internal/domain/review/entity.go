package review

import (
	"time"

	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotEligible = errs.New("player has no confirmed booking with this club")

// Review is one player's standing opinion of a club: one review per
// (player, club) pair, upserted in place.
type Review struct {
	id        uuid.UUID
	playerID  uuid.UUID
	clubID    uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(playerID, clubID uuid.UUID, ratingValue int, commentText string) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}
	return &Review{
		id:       uuid.New(),
		playerID: playerID,
		clubID:   clubID,
		rating:   rating,
		comment:  comment,
	}, nil
}

func ReconstructReview(id, playerID, clubID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		playerID:  playerID,
		clubID:    clubID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) PlayerID() uuid.UUID  { return r.playerID }
func (r *Review) ClubID() uuid.UUID    { return r.clubID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

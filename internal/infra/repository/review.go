package repository

import (
	"context"

	"courtbook/internal/domain/review"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

const upsertReviewSQL = `
INSERT INTO reviews (id, player_id, club_id, rating, comment)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT ON CONSTRAINT reviews_player_club_key
DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = now()
RETURNING id`

// Upsert keeps the one-review-per-(player, club) rule: a second
// submission replaces the first in place.
func (r *ReviewRepository) Upsert(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, upsertReviewSQL,
		rev.ID(), rev.PlayerID(), rev.ClubID(), rev.Rating().Value(), rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert review", err)
	}
	return id, nil
}

const deleteReviewSQL = `
DELETE FROM reviews WHERE player_id = $1 AND club_id = $2`

func (r *ReviewRepository) DeleteByPlayerClub(ctx context.Context, tx db.DBTX, playerID, clubID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReviewSQL, playerID, clubID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewSelectSQL = `
SELECT id, player_id, club_id, rating, comment, created_at, updated_at
FROM reviews
`

func (r *ReviewReadStore) FindByPlayerClub(ctx context.Context, playerID, clubID uuid.UUID) (*queries.ReviewView, error) {
	var (
		view                 queries.ReviewView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, reviewViewSelectSQL+`WHERE player_id = $1 AND club_id = $2`, playerID, clubID).
		Scan(&view.ID, &view.PlayerID, &view.ClubID, &view.Rating, &view.Comment, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *ReviewReadStore) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, reviewViewSelectSQL+`WHERE club_id = $1 ORDER BY updated_at DESC`, clubID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list club reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var (
			view                 queries.ReviewView
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.PlayerID, &view.ClubID, &view.Rating, &view.Comment, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}

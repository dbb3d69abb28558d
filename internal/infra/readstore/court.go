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

type CourtReadStore struct {
	db db.DBTX
}

func NewCourtReadStore(dbtx db.DBTX) *CourtReadStore {
	return &CourtReadStore{db: dbtx}
}

const courtViewSelectSQL = `
SELECT id, club_id, name, court_type, ground, height_cm, lights, price_cents_per_hour, created_at, updated_at
FROM courts
`

func (r *CourtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	row := r.db.QueryRow(ctx, courtViewSelectSQL+`WHERE id = $1`, id)
	view, err := scanCourtView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court view", err)
	}
	return view, nil
}

func (r *CourtReadStore) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*queries.CourtView, error) {
	rows, err := r.db.Query(ctx, courtViewSelectSQL+`WHERE club_id = $1 ORDER BY name`, clubID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list club courts", err)
	}
	defer rows.Close()

	var result []*queries.CourtView
	for rows.Next() {
		view, err := scanCourtView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate court rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourtView(row rowScanner) (*queries.CourtView, error) {
	var (
		view                 queries.CourtView
		ground               pgtype.Text
		heightCm             pgtype.Int4
		lights               pgtype.Bool
		price                pgtype.Int8
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.ClubID, &view.Name, &view.CourtType,
		&ground, &heightCm, &lights, &price, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	view.Ground = pgconv.StringPtrFromPgtype(ground)
	view.HeightCm = pgconv.Int32PtrFromPgtype(heightCm)
	view.Lights = pgconv.BoolPtrFromPgtype(lights)
	view.PriceCentsPerHour = pgconv.Int64PtrFromPgtype(price)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

package repository

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CourtRepository struct {
	db db.DBTX
}

func NewCourtRepository(dbtx db.DBTX) *CourtRepository {
	return &CourtRepository{db: dbtx}
}

const findCourtByIDSQL = `
SELECT id, club_id, name, court_type, ground, height_cm, lights, price_cents_per_hour
FROM courts
WHERE id = $1`

// LockByID appends FOR UPDATE so the admission transaction serializes
// per court: two concurrent bookings for one court queue here while
// different courts proceed in parallel.
const lockCourtByIDSQL = findCourtByIDSQL + `
FOR UPDATE`

func (r *CourtRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*court.Court, error) {
	return r.scanCourt(ctx, tx, findCourtByIDSQL, id)
}

func (r *CourtRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*court.Court, error) {
	return r.scanCourt(ctx, tx, lockCourtByIDSQL, id)
}

func (r *CourtRepository) scanCourt(ctx context.Context, tx db.DBTX, sql string, id uuid.UUID) (*court.Court, error) {
	var (
		courtID, clubID uuid.UUID
		name, courtType string
		ground          pgtype.Text
		heightCm        pgtype.Int4
		lights          pgtype.Bool
		price           pgtype.Int8
	)
	err := tx.QueryRow(ctx, sql, id).
		Scan(&courtID, &clubID, &name, &courtType, &ground, &heightCm, &lights, &price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}

	entity, err := court.NewCourt(
		courtID, clubID, name, court.Type(courtType),
		pgconv.StringPtrFromPgtype(ground),
		pgconv.Int32PtrFromPgtype(heightCm),
		pgconv.BoolPtrFromPgtype(lights),
		pgconv.Int64PtrFromPgtype(price),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored court is invalid", err)
	}
	return entity, nil
}

const deleteClubCourtsSQL = `DELETE FROM courts WHERE club_id = $1`

const insertCourtSQL = `
INSERT INTO courts (id, club_id, name, court_type, ground, height_cm, lights, price_cents_per_hour)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// ReplaceForClub swaps the club's whole catalog in one transaction, the
// management surface the club dashboard saves with. Bookings referencing
// removed courts cascade away with them.
func (r *CourtRepository) ReplaceForClub(ctx context.Context, tx db.DBTX, clubID uuid.UUID, courts []*court.Court) error {
	if _, err := tx.Exec(ctx, deleteClubCourtsSQL, clubID); err != nil {
		return infra.WrapRepoErr("failed to delete club courts", err)
	}

	for _, c := range courts {
		_, err := tx.Exec(ctx, insertCourtSQL,
			c.ID(), clubID, c.Name(), string(c.Kind()),
			pgconv.StringPtrToPgtype(c.Ground()),
			pgconv.Int32PtrToPgtype(c.Height()),
			pgconv.BoolPtrToPgtype(c.Lights()),
			pgconv.Int64PtrToPgtype(c.PriceCentsPerHour()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert court", err)
		}
	}
	return nil
}

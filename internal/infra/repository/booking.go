package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingSQL = `
INSERT INTO bookings (court_id, club_id, player_id, start_time, end_time, status, payment_method)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// Create inserts the booking. The bookings_no_overlap exclusion
// constraint makes a racing insert for an intersecting slot fail here
// with KindConflict regardless of what the application checked before.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var method pgtype.Text
	if m := b.PaymentMethod(); m != nil {
		method = pgconv.StringToPgtype(m.String())
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.CourtID(), b.ClubID(), b.PlayerID(),
		b.Slot().Start(), b.Slot().End(),
		b.Status().String(), method,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const intervalsForCourtSQL = `
SELECT start_time, end_time FROM bookings WHERE court_id = $1`

func (r *BookingRepository) IntervalsForCourt(ctx context.Context, tx db.DBTX, courtID uuid.UUID) ([]booking.Interval, error) {
	rows, err := tx.Query(ctx, intervalsForCourtSQL, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking intervals", err)
	}
	defer rows.Close()

	var intervals []booking.Interval
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking interval", err)
		}
		iv, err := booking.NewInterval(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking interval is invalid", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking intervals", err)
	}
	return intervals, nil
}

const findBookingByKeySQL = `
SELECT id, court_id, club_id, player_id, start_time, end_time, status, payment_method, created_at, updated_at
FROM bookings
WHERE court_id = $1 AND club_id = $2 AND player_id = $3 AND start_time = $4`

func (r *BookingRepository) FindByKey(ctx context.Context, tx db.DBTX, key booking.Key) (*booking.Booking, error) {
	var (
		id, courtID, clubID, playerID uuid.UUID
		start, end                    time.Time
		status                        string
		method                        pgtype.Text
		createdAt, updatedAt          pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, findBookingByKeySQL, key.CourtID, key.ClubID, key.PlayerID, key.StartTime).
		Scan(&id, &courtID, &clubID, &playerID, &start, &end, &status, &method, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by key", err)
	}

	slot, err := booking.NewInterval(start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking interval is invalid", err)
	}

	var paymentMethod *booking.PaymentMethod
	if s := pgconv.StringPtrFromPgtype(method); s != nil {
		m := booking.PaymentMethod(*s)
		paymentMethod = &m
	}

	return booking.ReconstructBooking(
		id, courtID, clubID, playerID,
		slot,
		booking.Status(status),
		paymentMethod,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const confirmBookingByKeySQL = `
UPDATE bookings
SET status = 'confirmed', updated_at = now()
WHERE court_id = $1 AND club_id = $2 AND player_id = $3 AND start_time = $4`

func (r *BookingRepository) ConfirmByKey(ctx context.Context, tx db.DBTX, key booking.Key) error {
	tag, err := tx.Exec(ctx, confirmBookingByKeySQL, key.CourtID, key.ClubID, key.PlayerID, key.StartTime)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBookingByKeySQL = `
DELETE FROM bookings
WHERE court_id = $1 AND club_id = $2 AND player_id = $3 AND start_time = $4`

func (r *BookingRepository) DeleteByKey(ctx context.Context, tx db.DBTX, key booking.Key) error {
	tag, err := tx.Exec(ctx, deleteBookingByKeySQL, key.CourtID, key.ClubID, key.PlayerID, key.StartTime)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteStalePendingSQL = `
DELETE FROM bookings WHERE status = 'pending' AND created_at < $1`

func (r *BookingRepository) DeleteStalePending(ctx context.Context, tx db.DBTX, olderThan time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, deleteStalePendingSQL, olderThan)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete stale pending bookings", err)
	}
	return tag.RowsAffected(), nil
}

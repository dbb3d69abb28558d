package readstore

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewByKeySQL = `
SELECT b.id, b.court_id, c.name, b.club_id, b.player_id,
       b.start_time, b.end_time, b.status, b.payment_method, b.created_at, b.updated_at
FROM bookings b
JOIN courts c ON c.id = b.court_id
WHERE b.court_id = $1 AND b.club_id = $2 AND b.player_id = $3 AND b.start_time = $4`

func (r *BookingReadStore) FindByKey(ctx context.Context, key booking.Key) (*queries.BookingView, error) {
	var (
		view                 queries.BookingView
		method               pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, bookingViewByKeySQL, key.CourtID, key.ClubID, key.PlayerID, key.StartTime).
		Scan(&view.ID, &view.CourtID, &view.CourtName, &view.ClubID, &view.PlayerID,
			&view.StartTime, &view.EndTime, &view.Status, &method, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	view.PaymentMethod = pgconv.StringPtrFromPgtype(method)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const bookingListSelectSQL = `
SELECT b.id, b.court_id, c.name, b.club_id, b.player_id,
       b.start_time, b.end_time, b.status, b.created_at
FROM bookings b
JOIN courts c ON c.id = b.court_id
`

func (r *BookingReadStore) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.list(ctx, bookingListSelectSQL+`WHERE b.player_id = $1 ORDER BY b.start_time`, playerID)
}

func (r *BookingReadStore) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.list(ctx, bookingListSelectSQL+`WHERE b.club_id = $1 ORDER BY b.start_time`, clubID)
}

func (r *BookingReadStore) ListByCourtBetween(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*queries.BookingListItem, error) {
	return r.list(ctx,
		bookingListSelectSQL+`WHERE b.court_id = $1 AND b.start_time < $3 AND b.end_time > $2 ORDER BY b.start_time`,
		courtID, from, to)
}

func (r *BookingReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.CourtID, &item.CourtName, &item.ClubID, &item.PlayerID,
			&item.StartTime, &item.EndTime, &item.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

const hasConfirmedBookingSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE player_id = $1 AND club_id = $2 AND status = 'confirmed'
)`

func (r *BookingReadStore) HasConfirmedBooking(ctx context.Context, playerID, clubID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasConfirmedBookingSQL, playerID, clubID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check confirmed booking existence", err)
	}
	return exists, nil
}

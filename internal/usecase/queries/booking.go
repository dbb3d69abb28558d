package queries

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByKey(ctx context.Context, key booking.Key) (*BookingView, error)
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*BookingListItem, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*BookingListItem, error)
	ListByCourtBetween(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*BookingListItem, error)
	HasConfirmedBooking(ctx context.Context, playerID, clubID uuid.UUID) (bool, error)
}

type BookingQueries interface {
	GetByKey(ctx context.Context, key booking.Key) (*BookingView, error)
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*BookingListItem, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*BookingListItem, error)
	// CourtCalendar lists the occupied slots of one court over a window,
	// the read the booking page renders availability from.
	CourtCalendar(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByKey(ctx context.Context, key booking.Key) (*BookingView, error) {
	view, err := q.store.FindByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.ListByPlayer(ctx, playerID)
}

func (q *bookingQueriesImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.ListByClub(ctx, clubID)
}

func (q *bookingQueriesImpl) CourtCalendar(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*BookingListItem, error) {
	return q.store.ListByCourtBetween(ctx, courtID, from, to)
}

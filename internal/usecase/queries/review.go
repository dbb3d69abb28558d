package queries

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewReadStore interface {
	FindByPlayerClub(ctx context.Context, playerID, clubID uuid.UUID) (*ReviewView, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*ReviewView, error)
}

type ReviewQueries interface {
	// CanReview derives the review capability: it holds iff at least one
	// confirmed booking exists between the player and the club.
	// Unconfirmed bookings never count.
	CanReview(ctx context.Context, playerID, clubID uuid.UUID) (bool, error)
	GetOwn(ctx context.Context, playerID, clubID uuid.UUID) (*ReviewView, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	reviews  ReviewReadStore
	bookings BookingReadStore
}

func NewReviewQueries(reviews ReviewReadStore, bookings BookingReadStore) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, bookings: bookings}
}

func (q *reviewQueriesImpl) CanReview(ctx context.Context, playerID, clubID uuid.UUID) (bool, error) {
	return q.bookings.HasConfirmedBooking(ctx, playerID, clubID)
}

func (q *reviewQueriesImpl) GetOwn(ctx context.Context, playerID, clubID uuid.UUID) (*ReviewView, error) {
	view, err := q.reviews.FindByPlayerClub(ctx, playerID, clubID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*ReviewView, error) {
	return q.reviews.ListByClub(ctx, clubID)
}

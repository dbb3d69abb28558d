package queries

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCourtNotFound = errs.New("court not found")

type CourtReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*CourtView, error)
}

type CourtQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*CourtView, error)
}

type courtQueriesImpl struct {
	store CourtReadStore
}

func NewCourtQueries(store CourtReadStore) CourtQueries {
	return &courtQueriesImpl{store: store}
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *courtQueriesImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*CourtView, error) {
	return q.store.ListByClub(ctx, clubID)
}

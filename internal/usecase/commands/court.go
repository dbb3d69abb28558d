package commands

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// CourtSpec is one court as submitted by the owning club. ID is optional:
// zero means a new court, otherwise the stated identity is kept so
// existing bookings stay attached across a replace.
type CourtSpec struct {
	ID                uuid.UUID
	Name              string
	CourtType         string
	Ground            *string
	HeightCm          *int32
	Lights            *bool
	PriceCentsPerHour *int64
}

type CourtCommands interface {
	// ReplaceCourts swaps the club's whole catalog for the submitted one
	// in a single transaction.
	ReplaceCourts(ctx context.Context, clubID uuid.UUID, specs []CourtSpec) ([]*queries.CourtView, error)
}

type courtUseCaseImpl struct {
	uow          shared.UnitOfWork
	courtQueries queries.CourtQueries
}

func NewCourtUseCase(uow shared.UnitOfWork, courtQueries queries.CourtQueries) CourtCommands {
	return &courtUseCaseImpl{uow: uow, courtQueries: courtQueries}
}

func (u *courtUseCaseImpl) ReplaceCourts(ctx context.Context, clubID uuid.UUID, specs []CourtSpec) ([]*queries.CourtView, error) {
	entities := make([]*court.Court, 0, len(specs))
	for _, spec := range specs {
		entity, err := court.NewCourt(
			spec.ID, clubID, spec.Name, court.Type(spec.CourtType),
			spec.Ground, spec.HeightCm, spec.Lights, spec.PriceCentsPerHour,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		entities = append(entities, entity)
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Courts().ReplaceForClub(ctx, tx.DB(), clubID, entities); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	views, err := u.courtQueries.ListByClub(ctx, clubID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

package commands

import (
	"context"

	"courtbook/internal/domain/review"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotEligible = errs.New("player has no confirmed booking with this club")
	ErrReviewNotFound    = errs.New("review not found")
)

type ReviewCommands interface {
	// UpsertReview creates or replaces the player's single review of a
	// club. Requires at least one confirmed booking between the two.
	UpsertReview(ctx context.Context, playerID, clubID uuid.UUID, rating int, comment string) (*queries.ReviewView, error)
	DeleteReview(ctx context.Context, playerID, clubID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow           shared.UnitOfWork
	reviewQueries queries.ReviewQueries
}

func NewReviewUseCase(uow shared.UnitOfWork, reviewQueries queries.ReviewQueries) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, reviewQueries: reviewQueries}
}

func (u *reviewUseCaseImpl) UpsertReview(ctx context.Context, playerID, clubID uuid.UUID, rating int, comment string) (*queries.ReviewView, error) {
	eligible, err := u.reviewQueries.CanReview(ctx, playerID, clubID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !eligible {
		return nil, ErrReviewNotEligible
	}

	entity, err := review.NewReview(playerID, clubID, rating, comment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reviews().Upsert(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.reviewQueries.GetOwn(ctx, playerID, clubID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *reviewUseCaseImpl) DeleteReview(ctx context.Context, playerID, clubID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reviews().DeleteByPlayerClub(ctx, tx.DB(), playerID, clubID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

//go:build unit

package commands_test

import (
	"context"
	"testing"

	"courtbook/internal/usecase/commands"
	"courtbook/tests/common/builder"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reviewFixture(t *testing.T) (*fakeStore, *queriesmock.MockReviewQueries, commands.ReviewCommands) {
	ctrl := gomock.NewController(t)
	store := newFakeStore()
	reviewViews := queriesmock.NewMockReviewQueries(ctrl)
	return store, reviewViews, commands.NewReviewUseCase(newFakeUoW(store), reviewViews)
}

func TestReviewUseCase_UpsertReview(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()
	clubID := uuid.New()

	t.Run("success: confirmed booking makes the player eligible", func(t *testing.T) {
		store, reviewViews, uc := reviewFixture(t)
		returnView := builder.NewReviewBuilder().WithPlayer(playerID).WithClub(clubID).BuildView()
		reviewViews.EXPECT().CanReview(gomock.Any(), playerID, clubID).Return(true, nil)
		reviewViews.EXPECT().GetOwn(gomock.Any(), playerID, clubID).Return(returnView, nil)

		view, err := uc.UpsertReview(ctx, playerID, clubID, 4, "Great courts")

		require.NoError(t, err)
		assert.Equal(t, returnView.ID, view.ID)
		assert.Len(t, store.reviews, 1)
	})

	t.Run("error: no confirmed booking means no review", func(t *testing.T) {
		store, reviewViews, uc := reviewFixture(t)
		reviewViews.EXPECT().CanReview(gomock.Any(), playerID, clubID).Return(false, nil)

		_, err := uc.UpsertReview(ctx, playerID, clubID, 4, "Great courts")

		assert.ErrorIs(t, err, commands.ErrReviewNotEligible)
		assert.Empty(t, store.reviews)
	})

	t.Run("error: out-of-range rating", func(t *testing.T) {
		store, reviewViews, uc := reviewFixture(t)
		reviewViews.EXPECT().CanReview(gomock.Any(), playerID, clubID).Return(true, nil)

		_, err := uc.UpsertReview(ctx, playerID, clubID, 6, "Great courts")

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, store.reviews)
	})
}

func TestReviewUseCase_DeleteReview(t *testing.T) {
	ctx := context.Background()

	t.Run("success: removes the player's review", func(t *testing.T) {
		store, reviewViews, uc := reviewFixture(t)
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		reviewViews.EXPECT().CanReview(gomock.Any(), rev.PlayerID(), rev.ClubID()).Return(true, nil)
		reviewViews.EXPECT().GetOwn(gomock.Any(), rev.PlayerID(), rev.ClubID()).
			Return(builder.NewReviewBuilder().BuildView(), nil)
		_, err = uc.UpsertReview(ctx, rev.PlayerID(), rev.ClubID(), 4, "Great courts")
		require.NoError(t, err)

		err = uc.DeleteReview(ctx, rev.PlayerID(), rev.ClubID())

		require.NoError(t, err)
		assert.Empty(t, store.reviews)
	})

	t.Run("error: nothing to delete", func(t *testing.T) {
		_, _, uc := reviewFixture(t)

		err := uc.DeleteReview(ctx, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrReviewNotFound)
	})
}

//go:build unit

package commands_test

import (
	"context"
	"testing"

	"courtbook/internal/domain/court"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/builder"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCourtUseCase_ReplaceCourts(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*fakeStore, *queriesmock.MockCourtQueries, commands.CourtCommands) {
		ctrl := gomock.NewController(t)
		store := newFakeStore()
		courtViews := queriesmock.NewMockCourtQueries(ctrl)
		return store, courtViews, commands.NewCourtUseCase(newFakeUoW(store), courtViews)
	}

	t.Run("success: swaps the club's catalog in one shot", func(t *testing.T) {
		store, courtViews, uc := newFixture(t)
		clubID := uuid.New()

		old, err := builder.NewCourtBuilder().WithClub(clubID).BuildDomain()
		require.NoError(t, err)
		store.addCourt(old)
		// A court of another club must survive the swap
		other, err := builder.NewCourtBuilder().BuildDomain()
		require.NoError(t, err)
		store.addCourt(other)

		price := int64(3000)
		specs := []commands.CourtSpec{
			{Name: "Court A", CourtType: string(court.TypeOutdoor), PriceCentsPerHour: &price},
			{Name: "Court B", CourtType: string(court.TypeIndoor)},
		}
		courtViews.EXPECT().ListByClub(gomock.Any(), clubID).
			Return([]*queries.CourtView{
				builder.NewCourtBuilder().WithClub(clubID).BuildView(),
				builder.NewCourtBuilder().WithClub(clubID).Indoor().BuildView(),
			}, nil)

		views, err := uc.ReplaceCourts(ctx, clubID, specs)

		require.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Len(t, store.courts, 3) // two new for the club, one untouched
		_, oldLeft := store.courts[old.ID()]
		assert.False(t, oldLeft)
		_, otherLeft := store.courts[other.ID()]
		assert.True(t, otherLeft)
	})

	t.Run("error: invalid spec rejects the whole batch", func(t *testing.T) {
		store, _, uc := newFixture(t)
		clubID := uuid.New()

		specs := []commands.CourtSpec{
			{Name: "", CourtType: string(court.TypeOutdoor)},
		}

		_, err := uc.ReplaceCourts(ctx, clubID, specs)

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, store.courts)
	})
}

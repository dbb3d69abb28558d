//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/usecase/commands"
	"courtbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentFixture(t *testing.T) (*fakeStore, commands.PaymentCommands, commands.PaymentCompletedEvent) {
	store := newFakeStore()
	uc := commands.NewPaymentUseCase(newFakeUoW(store))

	courtEntity, err := builder.NewCourtBuilder().BuildDomain()
	require.NoError(t, err)
	store.addCourt(courtEntity)

	start := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)
	evt := commands.PaymentCompletedEvent{
		CourtID:   courtEntity.ID(),
		ClubID:    courtEntity.ClubID(),
		PlayerID:  uuid.New(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
	return store, uc, evt
}

func TestPaymentUseCase_HandlePaymentCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("success: first delivery creates a confirmed booking", func(t *testing.T) {
		store, uc, evt := paymentFixture(t)

		err := uc.HandlePaymentCompleted(ctx, evt)

		require.NoError(t, err)
		require.Equal(t, 1, store.bookingCount())
		status, ok := store.status(evt.Key())
		require.True(t, ok)
		assert.Equal(t, booking.StatusConfirmed, status)
	})

	t.Run("success: replayed delivery is absorbed", func(t *testing.T) {
		store, uc, evt := paymentFixture(t)
		require.NoError(t, uc.HandlePaymentCompleted(ctx, evt))

		err := uc.HandlePaymentCompleted(ctx, evt)

		require.NoError(t, err)
		assert.Equal(t, 1, store.bookingCount())
		status, _ := store.status(evt.Key())
		assert.Equal(t, booking.StatusConfirmed, status)
	})

	t.Run("success: pending booking for the same key is promoted", func(t *testing.T) {
		store, uc, evt := paymentFixture(t)

		slot, err := booking.NewInterval(evt.StartTime, evt.EndTime)
		require.NoError(t, err)
		store.addBooking(
			booking.NewBooking(evt.CourtID, evt.ClubID, evt.PlayerID, slot, nil),
			time.Now(),
		)

		err = uc.HandlePaymentCompleted(ctx, evt)

		require.NoError(t, err)
		assert.Equal(t, 1, store.bookingCount())
		status, _ := store.status(evt.Key())
		assert.Equal(t, booking.StatusConfirmed, status)
	})

	t.Run("error: paid slot taken by someone else since the quote", func(t *testing.T) {
		store, uc, evt := paymentFixture(t)

		slot, err := booking.NewInterval(evt.StartTime.Add(30*time.Minute), evt.EndTime.Add(30*time.Minute))
		require.NoError(t, err)
		store.addBooking(
			booking.NewBooking(evt.CourtID, evt.ClubID, uuid.New(), slot, nil),
			time.Now(),
		)

		err = uc.HandlePaymentCompleted(ctx, evt)

		assert.ErrorIs(t, err, commands.ErrBookingConflict)
		assert.Equal(t, 1, store.bookingCount())
	})

	t.Run("error: unknown court in the event", func(t *testing.T) {
		_, uc, evt := paymentFixture(t)
		evt.CourtID = uuid.New()

		err := uc.HandlePaymentCompleted(ctx, evt)

		assert.ErrorIs(t, err, commands.ErrCourtNotFound)
	})

	t.Run("error: court belonging to a different club", func(t *testing.T) {
		_, uc, evt := paymentFixture(t)
		evt.ClubID = uuid.New()

		err := uc.HandlePaymentCompleted(ctx, evt)

		assert.ErrorIs(t, err, commands.ErrCourtNotFound)
	})

	t.Run("error: degenerate interval in the event", func(t *testing.T) {
		_, uc, evt := paymentFixture(t)
		evt.EndTime = evt.StartTime

		err := uc.HandlePaymentCompleted(ctx, evt)

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

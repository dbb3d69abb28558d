//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate(now time.Time) booking.Candidate {
	return booking.Candidate{
		CourtID:   uuid.New(),
		ClubID:    uuid.New(),
		PlayerID:  uuid.New(),
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}
}

func TestCandidateValidate(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("valid candidate passes", func(t *testing.T) {
		assert.NoError(t, validCandidate(now).Validate(now))
	})

	t.Run("missing fields are reported field-specifically", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*booking.Candidate)
			field  string
		}{
			{"missing court id", func(c *booking.Candidate) { c.CourtID = uuid.Nil }, booking.FieldCourtID},
			{"missing club id", func(c *booking.Candidate) { c.ClubID = uuid.Nil }, booking.FieldClubID},
			{"missing player id", func(c *booking.Candidate) { c.PlayerID = uuid.Nil }, booking.FieldPlayerID},
			{"missing start time", func(c *booking.Candidate) { c.StartTime = time.Time{} }, booking.FieldStartTime},
			{"missing end time", func(c *booking.Candidate) { c.EndTime = time.Time{} }, booking.FieldEndTime},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				c := validCandidate(now)
				tc.mutate(&c)

				err := c.Validate(now)
				require.Error(t, err)

				fe, ok := booking.AsFieldError(err)
				require.True(t, ok)
				assert.Equal(t, tc.field, fe.Field)
				assert.True(t, fe.IsMissing())
			})
		}
	})

	t.Run("missing court id and missing club id are distinguishable", func(t *testing.T) {
		a := validCandidate(now)
		a.CourtID = uuid.Nil
		b := validCandidate(now)
		b.ClubID = uuid.Nil

		feA, _ := booking.AsFieldError(a.Validate(now))
		feB, _ := booking.AsFieldError(b.Validate(now))
		assert.NotEqual(t, feA.Field, feB.Field)
	})

	t.Run("retroactive start is rejected", func(t *testing.T) {
		c := validCandidate(now)
		c.StartTime = now.Add(-time.Minute)

		fe, ok := booking.AsFieldError(c.Validate(now))
		require.True(t, ok)
		assert.Equal(t, booking.FieldStartTime, fe.Field)
		assert.False(t, fe.IsMissing())
	})

	t.Run("start exactly now is accepted", func(t *testing.T) {
		c := validCandidate(now)
		c.StartTime = now
		c.EndTime = now.Add(time.Hour)
		assert.NoError(t, c.Validate(now))
	})

	t.Run("end not after start is rejected", func(t *testing.T) {
		c := validCandidate(now)
		c.EndTime = c.StartTime

		fe, ok := booking.AsFieldError(c.Validate(now))
		require.True(t, ok)
		assert.Equal(t, booking.FieldEndTime, fe.Field)
	})

	t.Run("payment method tag", func(t *testing.T) {
		c := validCandidate(now)
		c.PaymentMethod = "in_person"
		assert.NoError(t, c.Validate(now))

		c.PaymentMethod = "online"
		assert.NoError(t, c.Validate(now))

		c.PaymentMethod = "crypto"
		fe, ok := booking.AsFieldError(c.Validate(now))
		require.True(t, ok)
		assert.Equal(t, booking.FieldPaymentMethod, fe.Field)
	})
}

func TestBookingLifecycle(t *testing.T) {
	slot := mustInterval(t, "10:00", "11:00")
	courtID, clubID, playerID := uuid.New(), uuid.New(), uuid.New()

	t.Run("direct booking starts pending", func(t *testing.T) {
		b := booking.NewBooking(courtID, clubID, playerID, slot, nil)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.False(t, b.IsConfirmed())
	})

	t.Run("paid booking starts confirmed", func(t *testing.T) {
		b := booking.NewPaidBooking(courtID, clubID, playerID, slot)
		assert.True(t, b.IsConfirmed())
		require.NotNil(t, b.PaymentMethod())
		assert.Equal(t, booking.PaymentOnline, *b.PaymentMethod())
	})

	t.Run("confirm is exactly-once", func(t *testing.T) {
		b := booking.NewBooking(courtID, clubID, playerID, slot, nil)
		require.NoError(t, b.Confirm())
		assert.ErrorIs(t, b.Confirm(), booking.ErrAlreadyConfirmed)
	})

	t.Run("deletion policy is owner-or-requester", func(t *testing.T) {
		b := booking.NewBooking(courtID, clubID, playerID, slot, nil)
		assert.True(t, b.DeletableBy(playerID))
		assert.True(t, b.DeletableBy(clubID))
		assert.False(t, b.DeletableBy(uuid.New()))
	})

	t.Run("key carries the full composite identity", func(t *testing.T) {
		b := booking.NewBooking(courtID, clubID, playerID, slot, nil)
		key := b.Key()
		assert.Equal(t, courtID, key.CourtID)
		assert.Equal(t, clubID, key.ClubID)
		assert.Equal(t, playerID, key.PlayerID)
		assert.Equal(t, slot.Start(), key.StartTime)
	})
}

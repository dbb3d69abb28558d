//go:build unit

package court_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/court"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrI64(v int64) *int64 { return &v }
func ptrI32(v int32) *int32 { return &v }
func ptrB(v bool) *bool     { return &v }

func slotOf(t *testing.T, d time.Duration) booking.Interval {
	t.Helper()
	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	iv, err := booking.NewInterval(start, start.Add(d))
	require.NoError(t, err)
	return iv
}

func TestNewCourt(t *testing.T) {
	clubID := uuid.New()

	t.Run("indoor court keeps height, drops lights", func(t *testing.T) {
		c, err := court.NewCourt(uuid.Nil, clubID, "Center Court", court.TypeIndoor, nil, ptrI32(700), ptrB(true), nil)
		require.NoError(t, err)
		assert.NotNil(t, c.Height())
		assert.Nil(t, c.Lights())
		assert.NotEqual(t, uuid.Nil, c.ID())
	})

	t.Run("outdoor court keeps lights, drops height", func(t *testing.T) {
		c, err := court.NewCourt(uuid.Nil, clubID, "Court 2", court.TypeOutdoor, nil, ptrI32(700), ptrB(true), nil)
		require.NoError(t, err)
		assert.Nil(t, c.Height())
		assert.NotNil(t, c.Lights())
	})

	t.Run("negative price NG", func(t *testing.T) {
		_, err := court.NewCourt(uuid.Nil, clubID, "Court 3", court.TypeOutdoor, nil, nil, nil, ptrI64(-100))
		assert.ErrorIs(t, err, court.ErrNegativePrice)
	})

	t.Run("empty name NG", func(t *testing.T) {
		_, err := court.NewCourt(uuid.Nil, clubID, "", court.TypeIndoor, nil, nil, nil, nil)
		assert.ErrorIs(t, err, court.ErrEmptyName)
	})

	t.Run("unknown type NG", func(t *testing.T) {
		_, err := court.NewCourt(uuid.Nil, clubID, "Court 4", court.Type("covered"), nil, nil, nil, nil)
		assert.ErrorIs(t, err, court.ErrInvalidType)
	})
}

func TestPriceFor(t *testing.T) {
	clubID := uuid.New()

	t.Run("rate times duration", func(t *testing.T) {
		c, err := court.NewCourt(uuid.Nil, clubID, "Court", court.TypeIndoor, nil, nil, nil, ptrI64(2000))
		require.NoError(t, err)

		price, err := c.PriceFor(slotOf(t, 90*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(3000), price)
	})

	t.Run("court without price is not payable online", func(t *testing.T) {
		c, err := court.NewCourt(uuid.Nil, clubID, "Court", court.TypeIndoor, nil, nil, nil, nil)
		require.NoError(t, err)

		_, err = c.PriceFor(slotOf(t, time.Hour))
		assert.ErrorIs(t, err, court.ErrNotPayable)
	})

	t.Run("zero price is not payable online", func(t *testing.T) {
		c, err := court.NewCourt(uuid.Nil, clubID, "Court", court.TypeIndoor, nil, nil, nil, ptrI64(0))
		require.NoError(t, err)

		_, err = c.PriceFor(slotOf(t, time.Hour))
		assert.ErrorIs(t, err, court.ErrNotPayable)
	})

	t.Run("ownership check", func(t *testing.T) {
		c, err := court.NewCourt(uuid.Nil, clubID, "Court", court.TypeIndoor, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, c.OwnedBy(clubID))
		assert.False(t, c.OwnedBy(uuid.New()))
	})
}

//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/authtoken"
	"courtbook/tests/common/authtest"
	"courtbook/tests/common/dbtest"
	"courtbook/tests/common/httptest"
	"courtbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	bookingsURL = "/api/bookings"
	confirmURL  = "/api/bookings/confirm"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) jwt() *authtest.JWTHelper {
	return authtest.NewJWTHelper(s.Config.Auth)
}

func futureSlot() (time.Time, time.Time) {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return start, start.Add(time.Hour)
}

func bookingBody(courtID, clubID uuid.UUID, start, end time.Time) map[string]any {
	return map[string]any{
		"court_id":   courtID.String(),
		"club_id":    clubID.String(),
		"start_time": start.Format(time.RFC3339),
		"end_time":   end.Format(time.RFC3339),
	}
}

// =============================================================================
// TestBookingLifecycle - create, confirm, delete through the API
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: pending booking is created, confirmed and deleted", func() {
		t := s.T()

		clubID := uuid.New()
		playerID := uuid.New()
		courtID := dbtest.CreateTestCourt(t, s.DB, clubID, "Center Court", 2000)

		playerToken := s.jwt().GenerateToken(t, playerID, authtoken.RolePlayer)
		clubToken := s.jwt().GenerateToken(t, clubID, authtoken.RoleClub)

		start, end := futureSlot()

		// Create
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingBody(courtID, clubID, start, end), playerToken)
		require.Equal(t, http.StatusCreated, w.Code, "booking creation failed: %s", w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "pending", created.Status)
		require.Equal(t, courtID, created.CourtID)

		// The calendar now shows the slot as occupied
		calURL := "/api/courts/" + courtID.String() + "/calendar" +
			"?from=" + start.Add(-time.Hour).Format(time.RFC3339) +
			"&to=" + end.Add(time.Hour).Format(time.RFC3339)
		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, calURL, nil, "")
		require.Equal(t, http.StatusOK, cw.Code)
		var slots []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &slots))
		require.Len(t, slots, 1)

		// Confirm as the owning club
		confirmBody := map[string]any{
			"court_id":   courtID.String(),
			"player_id":  playerID.String(),
			"start_time": start.Format(time.RFC3339),
		}
		fw := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, confirmBody, clubToken)
		require.Equal(t, http.StatusNoContent, fw.Code, "confirmation failed: %s", fw.Body.String())

		// Confirming again conflicts
		fw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, confirmBody, clubToken)
		require.Equal(t, http.StatusConflict, fw2.Code)

		// The player's list shows it confirmed
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, playerToken)
		require.Equal(t, http.StatusOK, lw.Code)
		var list []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, "confirmed", list[0].Status)

		// Delete by natural key as the requester
		delURL := bookingsURL +
			"?court_id=" + courtID.String() +
			"&club_id=" + clubID.String() +
			"&player_id=" + playerID.String() +
			"&start_time=" + start.Format(time.RFC3339)
		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, delURL, nil, playerToken)
		require.Equal(t, http.StatusNoContent, dw.Code)

		lw2 := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, playerToken)
		var empty []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw2.Body, &empty))
		require.Empty(t, empty)
	})

	s.Run("Error case: overlapping slot is rejected with 409", func() {
		t := s.T()

		clubID := uuid.New()
		courtID := dbtest.CreateTestCourt(t, s.DB, clubID, "Court 2", 2000)

		start, end := futureSlot()
		dbtest.CreateTestBooking(t, s.DB, courtID, clubID, uuid.New(), start, end, "confirmed")

		playerToken := s.jwt().GenerateToken(t, uuid.New(), authtoken.RolePlayer)

		// Half-overlapping attempt
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingBody(courtID, clubID, start.Add(30*time.Minute), end.Add(30*time.Minute)), playerToken)
		require.Equal(t, http.StatusConflict, w.Code)

		// Back-to-back attempt succeeds
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingBody(courtID, clubID, end, end.Add(time.Hour)), playerToken)
		require.Equal(t, http.StatusCreated, w2.Code, "adjacent slot rejected: %s", w2.Body.String())
	})

	s.Run("Error case: validation failure names the missing field", func() {
		t := s.T()

		playerToken := s.jwt().GenerateToken(t, uuid.New(), authtoken.RolePlayer)
		start, end := futureSlot()

		body := bookingBody(uuid.Nil, uuid.New(), start, end)
		delete(body, "court_id")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, playerToken)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var decoded map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &decoded))
		require.Equal(t, "court_id", decoded["field"])
	})
}

// =============================================================================
// TestConcurrentAdmission - the double-booking race
// =============================================================================

func (s *BookingSuite) TestConcurrentAdmission() {
	s.Run("Normal case: exactly one of N racing requests wins the slot", func() {
		t := s.T()

		clubID := uuid.New()
		courtID := dbtest.CreateTestCourt(t, s.DB, clubID, "Contested Court", 2000)
		start, end := futureSlot()

		const racers = 8
		codes := make([]int, racers)
		var mu sync.Mutex

		var g errgroup.Group
		for i := range racers {
			g.Go(func() error {
				token := s.jwt().GenerateToken(t, uuid.New(), authtoken.RolePlayer)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					bookingBody(courtID, clubID, start, end), token)
				mu.Lock()
				codes[i] = w.Code
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())

		var created, conflicted int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "exactly one racer should win, got codes %v", codes)
		require.Equal(t, racers-1, conflicted, "all other racers should conflict, got codes %v", codes)

		// Storage agrees: a single row occupies the slot
		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM bookings WHERE court_id = $1", courtID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

// =============================================================================
// TestAuthz - token and role enforcement on booking routes
// =============================================================================

func (s *BookingSuite) TestAuthz() {
	s.Run("Error case: missing and expired tokens are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := s.jwt().CreateExpiredToken(t, uuid.New(), authtoken.RolePlayer)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w2.Code)
	})

	s.Run("Error case: roles are enforced per route", func() {
		t := s.T()

		clubID := uuid.New()
		courtID := dbtest.CreateTestCourt(t, s.DB, clubID, "Court", 2000)
		start, end := futureSlot()

		clubToken := s.jwt().GenerateToken(t, clubID, authtoken.RoleClub)
		playerToken := s.jwt().GenerateToken(t, uuid.New(), authtoken.RolePlayer)

		// Clubs do not request bookings
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingBody(courtID, clubID, start, end), clubToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		// Players do not confirm them
		confirmBody := map[string]any{
			"court_id":   courtID.String(),
			"player_id":  uuid.New().String(),
			"start_time": start.Format(time.RFC3339),
		}
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, confirmBody, playerToken)
		require.Equal(t, http.StatusForbidden, w2.Code)
	})
}

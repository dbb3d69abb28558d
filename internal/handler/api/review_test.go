//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"courtbook/internal/handler/api"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/pkg/authtoken"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/builder"
	"courtbook/tests/common/httptest"
	"courtbook/tests/common/testutil"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler

	playerID uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.playerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("subject_id", s.playerID)
		c.Set("subject_role", authtoken.RolePlayer)
		c.Next()
	}

	s.router.PUT("/reviews", authMiddleware, s.handler.Upsert)
	s.router.DELETE("/reviews", authMiddleware, s.handler.Delete)
	s.router.GET("/reviews/eligibility", authMiddleware, s.handler.Eligibility)
	s.router.GET("/clubs/:id/reviews", s.handler.ListByClub)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestUpsert
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpsert() {
	url := "/reviews"

	b := builder.NewReviewBuilder().WithPlayer(s.playerID)
	reqBody := b.BuildUpsertRequestMap()
	returnView := b.BuildView()

	s.Run("success: returns 200 OK with the stored review", func() {
		s.mockCommands.EXPECT().UpsertReview(gomock.Any(), s.playerID, b.ClubID, b.Rating, b.Comment).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(int32(b.Rating), response.Rating)
	})

	// Validation boundary cases
	s.Run("validation boundaries", func() {
		bound := []testCaseReview{
			{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusOK},
			{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusOK},
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusOK},
			{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "missing field: club_id", mutate: testutil.Field("club_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
			{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range bound {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().UpsertReview(gomock.Any(), s.playerID, b.ClubID, gomock.Any(), gomock.Any()).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 when no confirmed booking with the club exists", func() {
		s.mockCommands.EXPECT().UpsertReview(gomock.Any(), s.playerID, b.ClubID, b.Rating, b.Comment).
			Return(nil, commands.ErrReviewNotEligible).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "confirmed booking")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().UpsertReview(gomock.Any(), s.playerID, b.ClubID, b.Rating, b.Comment).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	clubID := uuid.New()
	url := "/reviews?club_id=" + clubID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), s.playerID, clubID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when no review exists", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), s.playerID, clubID).
			Return(commands.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})

	s.Run("error: 400 when club_id missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reviews", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid club ID")
	})
}

// ================================================================================
// TestListByClub
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByClub() {
	clubID := uuid.New()
	url := "/clubs/" + clubID.String() + "/reviews"

	s.Run("success: returns the club's reviews without auth", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().WithClub(clubID).BuildView(),
			builder.NewReviewBuilder().WithClub(clubID).BuildView(),
		}
		s.mockQueries.EXPECT().ListByClub(gomock.Any(), clubID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(clubID, response[0].ClubID)
	})

	s.Run("error: 400 on malformed club id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/clubs/not-a-uuid/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid club ID format")
	})
}

// ================================================================================
// TestEligibility
// ================================================================================

func (s *ReviewHandlerTestSuite) TestEligibility() {
	clubID := uuid.New()
	url := "/reviews/eligibility?club_id=" + clubID.String()

	s.Run("success: eligible after a confirmed booking", func() {
		s.mockQueries.EXPECT().CanReview(gomock.Any(), s.playerID, clubID).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReviewEligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.CanReview)
		s.Equal(clubID, response.ClubID)
	})

	s.Run("success: not eligible without one", func() {
		s.mockQueries.EXPECT().CanReview(gomock.Any(), s.playerID, clubID).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReviewEligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.CanReview)
	})
}

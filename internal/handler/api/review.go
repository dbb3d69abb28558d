package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Upsert review
// @Description Create or replace the caller's review of a club; requires a confirmed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertReviewRequest true "Review"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reviews [put]
func (h *ReviewHandler) Upsert(c *gin.Context) {
	playerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpsertReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.reviewCommands.UpsertReview(c.Request.Context(), playerID, req.ClubID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotEligible):
			c.JSON(http.StatusForbidden, gin.H{"error": "A confirmed booking with this club is required to review it"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete own review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param club_id query string true "Club ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	playerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var query reqdto.ReviewClubQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	err := h.reviewCommands.DeleteReview(c.Request.Context(), playerID, query.ClubID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List a club's reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /clubs/{id}/reviews [get]
func (h *ReviewHandler) ListByClub(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID format"})
		return
	}

	views, err := h.reviewQueries.ListByClub(c.Request.Context(), clubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Review eligibility
// @Description Whether the caller may review the club (confirmed booking exists)
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param club_id query string true "Club ID"
// @Success 200 {object} resdto.ReviewEligibilityResponse
// @Failure 400 {object} map[string]string
// @Router /reviews/eligibility [get]
func (h *ReviewHandler) Eligibility(c *gin.Context) {
	playerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var query reqdto.ReviewClubQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	eligible, err := h.reviewQueries.CanReview(c.Request.Context(), playerID, query.ClubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.ReviewEligibilityResponse{
		ClubID:    query.ClubID,
		CanReview: eligible,
	})
}

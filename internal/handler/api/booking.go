package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/booking"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/authtoken"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Request a court slot; created pending until confirmed
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	playerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToCandidate(playerID))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Quote booking
// @Description Price a slot for online payment and build the metadata envelope
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteBookingRequest true "Quote request"
// @Success 200 {object} resdto.BookingQuoteResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	playerID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.QuoteBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	quote, err := h.bookingCommands.QuoteBooking(c.Request.Context(), req.ToCandidate(playerID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
		case errors.Is(err, commands.ErrCourtNotPayable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Court cannot be paid online"})
		case errors.Is(err, commands.ErrDomainValidation):
			respondValidationError(c, err)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingQuote(quote))
}

// @Summary Confirm booking
// @Description Confirm a pending booking as the owning club
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmBookingRequest true "Booking key"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	clubID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ConfirmBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.bookingCommands.ConfirmBooking(c.Request.Context(), clubID, req.ToKey(clubID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrBookingAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already confirmed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Description Remove a booking; allowed to the requester or the owning club
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param court_id query string true "Court ID"
// @Param club_id query string true "Club ID"
// @Param player_id query string true "Player ID"
// @Param start_time query string true "Slot start (RFC3339)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	subjectID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var query reqdto.BookingKeyQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking key"})
		return
	}

	err := h.bookingCommands.DeleteBooking(c.Request.Context(), subjectID, query.ToKey())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List own bookings
// @Description Player sees own bookings; a club sees bookings across its courts
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	subjectID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetRole(c)

	var (
		items []*queries.BookingListItem
		err   error
	)
	if role == authtoken.RoleClub {
		items, err = h.bookingQueries.ListByClub(c.Request.Context(), subjectID)
	} else {
		items, err = h.bookingQueries.ListByPlayer(c.Request.Context(), subjectID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Court calendar
// @Description Occupied slots of one court over a window
// @Tags bookings
// @Produce json
// @Param id path string true "Court ID"
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /courts/{id}/calendar [get]
func (h *BookingHandler) CourtCalendar(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court ID format"})
		return
	}

	var query reqdto.CalendarQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar window"})
		return
	}

	items, err := h.bookingQueries.CourtCalendar(c.Request.Context(), courtID, query.From, query.To)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Requested slot overlaps an existing booking"})
	case errors.Is(err, commands.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking already exists"})
	case errors.Is(err, commands.ErrDomainValidation):
		respondValidationError(c, err)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondValidationError surfaces which field failed and how, so a
// missing court id and a missing club id read differently to clients.
func respondValidationError(c *gin.Context, err error) {
	if fieldErr, ok := booking.AsFieldError(err); ok {
		c.JSON(http.StatusBadRequest,
			httperr.New(http.StatusBadRequest, fieldErr.Error()).WithField(fieldErr.Field))
		return
	}
	c.JSON(http.StatusBadRequest, httperr.New(http.StatusBadRequest, "Validation failed"))
}

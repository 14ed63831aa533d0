package api

import (
	"errors"
	"net/http"

	"eventure/internal/domain/booking"
	reqdto "eventure/internal/handler/dto/request"
	resdto "eventure/internal/handler/dto/response"
	"eventure/internal/handler/httperr"
	"eventure/internal/handler/middleware"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"

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

// @Summary Quote a rental
// @Description Price a rental period against a scooter's hourly rate
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	draft := booking.NewDraft(
		req.PickupDate, req.PickupTime,
		req.DropoffDate, req.DropoffTime,
		req.PickupLocation, req.DropoffLocation,
	)

	quote, err := h.bookingQueries.Quote(c.Request.Context(), req.ScooterID, draft)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrIncompleteFields):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "All rental period fields are required")
		case errors.Is(err, booking.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Dropoff must be after pickup")
		case errors.Is(err, queries.ErrScooterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Scooter not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

// @Summary Confirm a booking
// @Description Record a booking after gateway payment success. Replaying the
// same payment reference returns the already-recorded booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmBookingRequest true "Confirmation request"
// @Success 200 {object} resdto.BookingResponse
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, middleware.ErrMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrIncompleteFields):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "All rental period fields are required")
		case errors.Is(err, booking.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Dropoff must be after pickup")
		case errors.Is(err, commands.ErrScooterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Scooter not found")
		case errors.Is(err, commands.ErrSoldOut):
			httperr.AbortWithError(c, http.StatusConflict, err, "Scooter is sold out")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	response, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, response)
}

// @Summary Get booking
// @Description Get one of the current user's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, middleware.ErrMissingIdentity, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List user bookings
// @Description Get all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, middleware.ErrMissingIdentity, "Internal server error")
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response)
}

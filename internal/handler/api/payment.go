package api

import (
	"errors"
	"net/http"

	"eventure/internal/domain/booking"
	reqdto "eventure/internal/handler/dto/request"
	resdto "eventure/internal/handler/dto/response"
	"eventure/internal/handler/httperr"
	"eventure/internal/handler/middleware"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Start checkout
// @Description Open a checkout session and create the gateway payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, middleware.ErrMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.paymentCommands.Checkout(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrIncompleteFields):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "All rental period fields are required")
		case errors.Is(err, booking.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Dropoff must be after pickup")
		case errors.Is(err, commands.ErrQuoteNotPayable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quote amount must be positive")
		case errors.Is(err, commands.ErrScooterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Scooter not found")
		case errors.Is(err, commands.ErrSoldOut):
			httperr.AbortWithError(c, http.StatusConflict, err, "Scooter is sold out")
		case errors.Is(err, commands.ErrCheckoutInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "A checkout for this scooter is already in progress")
		case errs.Is(err, commands.ErrPaymentInitFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment initialization failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Dismiss checkout
// @Description Abandon the payment widget and release the checkout session
// @Tags payments
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.DismissCheckoutRequest true "Dismiss request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /payments/dismiss [post]
func (h *PaymentHandler) Dismiss(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, middleware.ErrMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.DismissCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.paymentCommands.Dismiss(c.Request.Context(), userID, req.ScooterID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}

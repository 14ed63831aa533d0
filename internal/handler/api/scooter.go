package api

import (
	"errors"
	"net/http"

	reqdto "eventure/internal/handler/dto/request"
	resdto "eventure/internal/handler/dto/response"
	"eventure/internal/handler/httperr"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScooterHandler struct {
	scooterCommands commands.ScooterCommands
	scooterQueries  queries.ScooterQueries
}

func NewScooterHandler(scooterCommands commands.ScooterCommands, scooterQueries queries.ScooterQueries) *ScooterHandler {
	return &ScooterHandler{
		scooterCommands: scooterCommands,
		scooterQueries:  scooterQueries,
	}
}

// @Summary List scooters
// @Description List the scooter catalog from the reconciler snapshot
// @Tags scooters
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /scooters [get]
func (h *ScooterHandler) ListScooters(c *gin.Context) {
	listing, err := h.scooterQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response, err := resdto.FromCatalogListing(listing)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get scooter
// @Description Get a scooter by ID
// @Tags scooters
// @Produce json
// @Param id path string true "Scooter ID"
// @Success 200 {object} resdto.ScooterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /scooters/{id} [get]
func (h *ScooterHandler) GetScooter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid scooter ID format")
		return
	}

	view, err := h.scooterQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrScooterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Scooter not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	response, err := resdto.FromScooterView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create scooter
// @Description Register a new scooter in the fleet (admin only)
// @Tags scooters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateScooterRequest true "Scooter attributes"
// @Success 201 {object} resdto.ScooterResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /scooters [post]
func (h *ScooterHandler) CreateScooter(c *gin.Context) {
	var req reqdto.CreateScooterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.scooterCommands.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrScooterValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Scooter validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	response, err := resdto.FromScooterView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Update scooter
// @Description Update a scooter's attributes (admin only)
// @Tags scooters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scooter ID"
// @Param request body reqdto.UpdateScooterRequest true "Scooter attributes"
// @Success 200 {object} resdto.ScooterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /scooters/{id} [put]
func (h *ScooterHandler) UpdateScooter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid scooter ID format")
		return
	}

	var req reqdto.UpdateScooterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.scooterCommands.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrScooterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Scooter not found")
		case errs.Is(err, commands.ErrScooterValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Scooter validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	response, err := resdto.FromScooterView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Delete scooter
// @Description Remove a scooter from the fleet (admin only)
// @Tags scooters
// @Security BearerAuth
// @Param id path string true "Scooter ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /scooters/{id} [delete]
func (h *ScooterHandler) DeleteScooter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid scooter ID format")
		return
	}

	if err := h.scooterCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrScooterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Scooter not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

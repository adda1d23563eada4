package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// AthleteHandler handles athlete profile requests.
type AthleteHandler struct {
	athleteService service.AthleteService
}

// NewAthleteHandler creates a new AthleteHandler instance.
func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// AthleteRequest represents the athlete create/update payload.
type AthleteRequest struct {
	Name   string  `json:"name" binding:"required"`
	Gender string  `json:"gender" binding:"required,oneof=male female"`
	Age    int     `json:"age" binding:"required,gt=0"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	UserID int64   `json:"user_id" binding:"required"`
}

func (r AthleteRequest) toInput() service.AthleteInput {
	return service.AthleteInput{
		Name:   r.Name,
		Gender: r.Gender,
		Age:    r.Age,
		Weight: r.Weight,
		Height: r.Height,
		UserID: r.UserID,
	}
}

// Create godoc
// @Summary Create an athlete profile
// @Tags athletes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AthleteRequest true "Athlete details"
// @Success 200 {object} models.Athlete
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /athletes [post]
func (h *AthleteHandler) Create(c *gin.Context) {
	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	athlete, err := h.athleteService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrUserMissing) {
			RespondError(c, http.StatusBadRequest, "user does not exist")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, athlete)
}

// List godoc
// @Summary List athlete profiles
// @Tags athletes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Athlete
// @Router /athletes [get]
func (h *AthleteHandler) List(c *gin.Context) {
	athletes, err := h.athleteService.List(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}
	c.JSON(http.StatusOK, athletes)
}

// Update godoc
// @Summary Update an athlete profile
// @Tags athletes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Athlete ID"
// @Param request body AthleteRequest true "Athlete details"
// @Success 200 {object} models.Athlete
// @Failure 404 {object} map[string]string
// @Router /athletes/{id} [put]
func (h *AthleteHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	athlete, err := h.athleteService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			RespondError(c, http.StatusNotFound, "athlete not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, athlete)
}

// Delete godoc
// @Summary Delete an athlete profile
// @Tags athletes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id} [delete]
func (h *AthleteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.athleteService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			RespondError(c, http.StatusNotFound, "athlete not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "athlete deleted successfully"})
}

// pathID parses the :id route parameter, responding 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

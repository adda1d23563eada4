package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/middleware"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// PerformanceHandler handles performance test record requests.
type PerformanceHandler struct {
	performanceService service.PerformanceService
}

// NewPerformanceHandler creates a new PerformanceHandler instance.
func NewPerformanceHandler(performanceService service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

// PerformanceRequest represents the performance create/update payload.
type PerformanceRequest struct {
	VO2Max     float64 `json:"vo2max" binding:"required,gt=0"`
	HRMax      float64 `json:"hr_max" binding:"required,gt=0"`
	RFMax      float64 `json:"rf_max" binding:"required,gt=0"`
	CadenceMax float64 `json:"cadence_max" binding:"required,gt=0"`
	PPO        float64 `json:"ppo" binding:"required,gt=0"`
	P1         float64 `json:"p1" binding:"required,gt=0"`
	P2         float64 `json:"p2" binding:"required,gt=0"`
	P3         float64 `json:"p3" binding:"required,gt=0"`
	AthleteID  int64   `json:"athlete_id" binding:"required"`
}

func (r PerformanceRequest) toInput() service.PerformanceInput {
	return service.PerformanceInput{
		VO2Max:     r.VO2Max,
		HRMax:      r.HRMax,
		RFMax:      r.RFMax,
		CadenceMax: r.CadenceMax,
		PPO:        r.PPO,
		P1:         r.P1,
		P2:         r.P2,
		P3:         r.P3,
		AthleteID:  r.AthleteID,
	}
}

// Create godoc
// @Summary Record a performance test
// @Tags performances
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PerformanceRequest true "Performance details"
// @Success 200 {object} models.Performance
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /performances [post]
func (h *PerformanceHandler) Create(c *gin.Context) {
	var req PerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	performance, err := h.performanceService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrAthleteMissing) {
			RespondError(c, http.StatusBadRequest, "athlete does not exist")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, performance)
}

// List godoc
// @Summary List performance tests
// @Description Coaches and admins see every record; athletes see only the rows of their own profile.
// @Tags performances
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Performance
// @Router /performances [get]
func (h *PerformanceHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	performances, err := h.performanceService.ListFor(c.Request.Context(), user)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, performances)
}

// Update godoc
// @Summary Update a performance test
// @Tags performances
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Performance ID"
// @Param request body PerformanceRequest true "Performance details"
// @Success 200 {object} models.Performance
// @Failure 404 {object} map[string]string
// @Router /performances/{id} [put]
func (h *PerformanceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req PerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	performance, err := h.performanceService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrPerformanceNotFound) {
			RespondError(c, http.StatusNotFound, "performance not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, performance)
}

// Delete godoc
// @Summary Delete a performance test
// @Tags performances
// @Security BearerAuth
// @Produce json
// @Param id path int true "Performance ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /performances/{id} [delete]
func (h *PerformanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.performanceService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPerformanceNotFound) {
			RespondError(c, http.StatusNotFound, "performance not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "performance deleted successfully"})
}

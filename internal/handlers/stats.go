package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/repository"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// StatsHandler serves the leaderboard endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// VO2Max godoc
// @Summary Athlete with the highest VO2max
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} repository.StatResult
// @Failure 404 {object} map[string]string
// @Router /stats/vo2max [get]
func (h *StatsHandler) VO2Max(c *gin.Context) {
	h.respond(c, h.statsService.BestVO2Max)
}

// PPO godoc
// @Summary Athlete with the highest peak power output
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} repository.StatResult
// @Failure 404 {object} map[string]string
// @Router /stats/ppo [get]
func (h *StatsHandler) PPO(c *gin.Context) {
	h.respond(c, h.statsService.BestPPO)
}

// PowerToWeight godoc
// @Summary Athlete with the best power-to-weight ratio
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} repository.StatResult
// @Failure 404 {object} map[string]string
// @Router /stats/weightpower [get]
func (h *StatsHandler) PowerToWeight(c *gin.Context) {
	h.respond(c, h.statsService.BestPowerToWeight)
}

func (h *StatsHandler) respond(c *gin.Context, query func(context.Context) (*repository.StatResult, error)) {
	result, err := query(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoPerformances) {
			RespondError(c, http.StatusNotFound, "no performances recorded")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}
	c.JSON(http.StatusOK, result)
}

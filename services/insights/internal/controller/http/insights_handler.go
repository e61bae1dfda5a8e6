package http

import (
	"net/http"

	"solraise/pkg/logger"
	"solraise/services/insights/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	insightsUseCase usecase.InsightsUseCase
	logger          *logger.Logger
}

func NewInsightsHandler(insightsUseCase usecase.InsightsUseCase, logger *logger.Logger) *InsightsHandler {
	return &InsightsHandler{
		insightsUseCase: insightsUseCase,
		logger:          logger,
	}
}

// ActivityFeed godoc
// @Summary      Recent platform activity
// @Description  The 20 most recent donations, pool donations and tips in one feed
// @Tags         insights
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /activity [get]
func (h *InsightsHandler) ActivityFeed(c *gin.Context) {
	activities, err := h.insightsUseCase.ActivityFeed()
	if err != nil {
		h.logger.Error("Failed to build activity feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}

// Leaderboard godoc
// @Summary      Platform leaderboard
// @Description  Top donors, top reward point earners and most active users
// @Tags         insights
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /leaderboard [get]
func (h *InsightsHandler) Leaderboard(c *gin.Context) {
	board, err := h.insightsUseCase.Leaderboard()
	if err != nil {
		h.logger.Error("Failed to build leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// PlatformStats godoc
// @Summary      Platform-wide donation stats
// @Description  Total donation volume, distinct donors, rewards distributed and pending distribution
// @Tags         insights
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /stats [get]
func (h *InsightsHandler) PlatformStats(c *gin.Context) {
	stats, err := h.insightsUseCase.PlatformStats()
	if err != nil {
		h.logger.Error("Failed to compute platform stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

package http

import (
	"fmt"
	"net/http"

	"solraise/pkg/logger"
	"solraise/services/tips/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TipHandler struct {
	tipUseCase usecase.TipUseCase
	logger     *logger.Logger
}

func NewTipHandler(tipUseCase usecase.TipUseCase, logger *logger.Logger) *TipHandler {
	return &TipHandler{
		tipUseCase: tipUseCase,
		logger:     logger,
	}
}

type TipRequest struct {
	Sender            string  `json:"sender" binding:"required"`
	Recipient         string  `json:"recipient" binding:"required"`
	RecipientUsername string  `json:"recipient_username"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	Message           string  `json:"message" binding:"max=280"`
	Signature         string  `json:"signature" binding:"required"`
}

// RecordTip godoc
// @Summary      Record a tip
// @Description  Record a confirmed on-chain tip between wallets and award reward points to the sender
// @Tags         tips
// @Accept       json
// @Produce      json
// @Param        request body TipRequest true "Tip details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tips [post]
func (h *TipHandler) RecordTip(c *gin.Context) {
	var req TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip, err := h.tipUseCase.RecordTip(req.Sender, req.Recipient, req.RecipientUsername, req.Amount, req.Message, req.Signature)
	if err != nil {
		h.logger.Error("Failed to record tip: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record tip"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"tip":                  tip,
		"reward_points_earned": tip.RewardPointsEarned,
		"message":              fmt.Sprintf("Tip sent! You earned %d reward points!", tip.RewardPointsEarned),
	})
}

// ListTips godoc
// @Summary      List tips
// @Description  List all recorded tips with the total tipped volume
// @Tags         tips
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /tips [get]
func (h *TipHandler) ListTips(c *gin.Context) {
	tips, total, err := h.tipUseCase.ListTips()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tips":       tips,
		"total_tips": total,
	})
}

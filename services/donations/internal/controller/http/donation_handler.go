package http

import (
	"fmt"
	"net/http"

	"solraise/pkg/logger"
	"solraise/services/donations/internal/entity"
	"solraise/services/donations/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	donationUseCase usecase.DonationUseCase
	logger          *logger.Logger
}

func NewDonationHandler(donationUseCase usecase.DonationUseCase, logger *logger.Logger) *DonationHandler {
	return &DonationHandler{
		donationUseCase: donationUseCase,
		logger:          logger,
	}
}

type DonationRequest struct {
	Donor     string  `json:"donor" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Signature string  `json:"signature" binding:"required"`
	Type      string  `json:"type" binding:"omitempty,oneof=one-tap custom"`
}

type PoolDonationRequest struct {
	Donor     string  `json:"donor" binding:"required"`
	Pool      string  `json:"pool" binding:"required"`
	PoolName  string  `json:"pool_name"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Signature string  `json:"signature" binding:"required"`
}

// RecordDonation godoc
// @Summary      Record a treasury donation
// @Description  Record a confirmed on-chain donation to the platform treasury and award reward points
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request body DonationRequest true "Donation details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /donations [post]
func (h *DonationHandler) RecordDonation(c *gin.Context) {
	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.donationUseCase.RecordDonation(req.Donor, req.Amount, req.Signature, entity.DonationType(req.Type))
	if err != nil {
		h.logger.Error("Failed to record donation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"donation":             donation,
		"reward_points_earned": donation.RewardPointsEarned,
		"message":              fmt.Sprintf("Donation recorded! You earned %d reward points!", donation.RewardPointsEarned),
	})
}

// ListDonations godoc
// @Summary      List treasury donations
// @Description  List all recorded treasury donations with aggregate stats
// @Tags         donations
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /donations [get]
func (h *DonationHandler) ListDonations(c *gin.Context) {
	donations, stats, err := h.donationUseCase.ListDonations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations": donations,
		"stats":     stats,
	})
}

// RecordPoolDonation godoc
// @Summary      Record a pool donation
// @Description  Record a confirmed on-chain donation to a cause pool and award reward points
// @Tags         pools
// @Accept       json
// @Produce      json
// @Param        request body PoolDonationRequest true "Pool donation details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /pools/donate [post]
func (h *DonationHandler) RecordPoolDonation(c *gin.Context) {
	var req PoolDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.donationUseCase.RecordPoolDonation(req.Donor, req.Pool, req.PoolName, req.Amount, req.Signature)
	if err != nil {
		h.logger.Error("Failed to record pool donation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"donation":             donation,
		"reward_points_earned": donation.RewardPointsEarned,
		"message":              fmt.Sprintf("Successfully donated %g SOL. You earned %d reward points!", donation.Amount, donation.RewardPointsEarned),
	})
}

// ListPoolDonations godoc
// @Summary      List pool donations
// @Description  List all recorded pool donations with aggregate stats
// @Tags         pools
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /pools/donations [get]
func (h *DonationHandler) ListPoolDonations(c *gin.Context) {
	donations, stats, err := h.donationUseCase.ListPoolDonations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pool donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations": donations,
		"stats":     stats,
	})
}

// ListPools godoc
// @Summary      List cause pools
// @Description  List all cause pools with their aggregate totals
// @Tags         pools
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /pools [get]
func (h *DonationHandler) ListPools(c *gin.Context) {
	pools, err := h.donationUseCase.ListPools()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pools"})
		return
	}

	totalDonations := float64(0)
	totalDonors := 0
	for _, pool := range pools {
		totalDonations += pool.TotalDonated
		totalDonors += pool.DonorCount
	}

	c.JSON(http.StatusOK, gin.H{
		"pools":           pools,
		"total_donations": totalDonations,
		"total_donors":    totalDonors,
	})
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"solraise/pkg/logger"
	"solraise/services/registry/internal/entity"
	"solraise/services/registry/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistryHandler struct {
	registryUseCase usecase.RegistryUseCase
	logger          *logger.Logger
}

func NewRegistryHandler(registryUseCase usecase.RegistryUseCase, logger *logger.Logger) *RegistryHandler {
	return &RegistryHandler{
		registryUseCase: registryUseCase,
		logger:          logger,
	}
}

type RegisterRequest struct {
	Address     string `json:"address" binding:"required"`
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Bio         string `json:"bio"`
}

type RegisterResponse struct {
	User    *entity.User `json:"user"`
	Message string       `json:"message"`
}

// UserPreview hides the full wallet address in public listings.
type UserPreview struct {
	AddressPreview   string  `json:"address_preview"`
	Username         string  `json:"username"`
	DisplayName      string  `json:"display_name"`
	Bio              string  `json:"bio"`
	AvatarURL        string  `json:"avatar_url,omitempty"`
	TotalDonated     float64 `json:"total_donated"`
	RewardPoints     int64   `json:"reward_points"`
	DonationCount    int     `json:"donation_count"`
	TipCountSent     int     `json:"tip_count_sent"`
	TipCountReceived int     `json:"tip_count_received"`
}

// Register godoc
// @Summary      Register a wallet
// @Description  Create a user profile for a connected wallet address
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  RegisterResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /register [post]
func (h *RegistryHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.registryUseCase.Register(req.Address, req.Username, req.DisplayName, req.Bio)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
		case errors.Is(err, usecase.ErrWalletRegistered), errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to register user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		User:    user,
		Message: "Registration successful! You received 50 welcome bonus points!",
	})
}

// CheckRegistration godoc
// @Summary      Check registration
// @Description  Check whether a wallet address has a registered profile
// @Tags         registry
// @Produce      json
// @Param        address query string true "Wallet address"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /register/check [get]
func (h *RegistryHandler) CheckRegistration(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address required"})
		return
	}

	user, err := h.registryUseCase.CheckRegistration(address)
	if err != nil {
		h.logger.Error("Failed to check registration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registered": user != nil,
		"user":       user,
	})
}

// ListUsers godoc
// @Summary      List users
// @Description  List active users with masked wallet addresses
// @Tags         registry
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /users [get]
func (h *RegistryHandler) ListUsers(c *gin.Context) {
	users, err := h.registryUseCase.ListActiveUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	previews := make([]UserPreview, len(users))
	for i, u := range users {
		previews[i] = UserPreview{
			AddressPreview:   maskAddress(u.Address),
			Username:         u.Username,
			DisplayName:      u.DisplayName,
			Bio:              u.Bio,
			AvatarURL:        u.AvatarURL,
			TotalDonated:     u.TotalDonated,
			RewardPoints:     u.RewardPoints,
			DonationCount:    u.DonationCount,
			TipCountSent:     u.TipCountSent,
			TipCountReceived: u.TipCountReceived,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       previews,
		"total_users": len(previews),
	})
}

// ListActiveUsers godoc
// @Summary      List tippable users
// @Description  List active users with full addresses, for the tip recipient picker
// @Tags         registry
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /users/active [get]
func (h *RegistryHandler) ListActiveUsers(c *gin.Context) {
	users, err := h.registryUseCase.ListActiveUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"total_users": len(users),
	})
}

// UploadAvatar godoc
// @Summary      Upload avatar
// @Description  Upload a profile avatar for a registered wallet
// @Tags         registry
// @Accept       multipart/form-data
// @Produce      json
// @Param        address path string true "Wallet address"
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{address}/avatar [post]
func (h *RegistryHandler) UploadAvatar(c *gin.Context) {
	address := c.Param("address")

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read avatar file"})
		return
	}
	defer file.Close()

	fileKey := fmt.Sprintf("avatars/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	user, err := h.registryUseCase.UploadAvatar(address, file, fileKey, contentType)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to upload avatar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func maskAddress(address string) string {
	if len(address) <= 8 {
		return address
	}
	return address[:4] + "..." + address[len(address)-4:]
}

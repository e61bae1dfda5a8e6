package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solraise/pkg/logger"
	"solraise/services/registry/internal/entity"
	"solraise/services/registry/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRegistryUseCase is a mock implementation of RegistryUseCase
type MockRegistryUseCase struct {
	mock.Mock
}

func (m *MockRegistryUseCase) Register(address, username, displayName, bio string) (*entity.User, error) {
	args := m.Called(address, username, displayName, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockRegistryUseCase) CheckRegistration(address string) (*entity.User, error) {
	args := m.Called(address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockRegistryUseCase) ListActiveUsers() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockRegistryUseCase) UploadAvatar(address string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	args := m.Called(address, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.RegistryUseCase = (*MockRegistryUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRegister_Created(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	handler := NewRegistryHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUser := &entity.User{
		Address:      "addr1",
		Username:     "alice",
		DisplayName:  "Alice",
		RewardPoints: 50,
		IsActive:     true,
	}
	mockUseCase.On("Register", "addr1", "alice", "Alice", "").Return(mockUser, nil)

	body := `{"address":"addr1","username":"alice","display_name":"Alice"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response RegisterResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "alice", response.User.Username)
	assert.Contains(t, response.Message, "50 welcome bonus points")

	mockUseCase.AssertExpectations(t)
}

func TestRegister_MissingBody(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	handler := NewRegistryHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(`{"address":"addr1"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_ValidationError(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	handler := NewRegistryHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUseCase.On("Register", "addr1", "AB", "Alice", "").
		Return(nil, &usecase.ValidationError{Reason: "username must be 3-30 characters"})

	body := `{"address":"addr1","username":"AB","display_name":"Alice"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "username must be 3-30 characters", response["error"])
}

func TestRegister_Conflict(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	handler := NewRegistryHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUseCase.On("Register", "addr1", "alice", "Alice", "").Return(nil, usecase.ErrWalletRegistered)

	body := `{"address":"addr1","username":"alice","display_name":"Alice"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckRegistration_Found(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	handler := NewRegistryHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/register/check", handler.CheckRegistration)

	mockUseCase.On("CheckRegistration", "addr1").Return(&entity.User{Address: "addr1", Username: "alice"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/register/check?address=addr1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["registered"])
}

func TestCheckRegistration_MissingAddress(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	handler := NewRegistryHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/register/check", handler.CheckRegistration)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/register/check", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers_MasksAddresses(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	handler := NewRegistryHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users", handler.ListUsers)

	mockUseCase.On("ListActiveUsers").Return([]*entity.User{
		{Address: "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", Username: "alice"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Users      []UserPreview `json:"users"`
		TotalUsers int           `json:"total_users"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 1, response.TotalUsers)
	assert.Equal(t, "9WzD...AWWM", response.Users[0].AddressPreview)
}

func TestMaskAddress(t *testing.T) {
	assert.Equal(t, "9WzD...AWWM", maskAddress("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"))
	assert.Equal(t, "short", maskAddress("short"))
}

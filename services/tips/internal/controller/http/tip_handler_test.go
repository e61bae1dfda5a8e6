package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solraise/pkg/logger"
	"solraise/services/tips/internal/entity"
	"solraise/services/tips/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTipUseCase is a mock implementation of TipUseCase
type MockTipUseCase struct {
	mock.Mock
}

func (m *MockTipUseCase) RecordTip(sender, recipient, recipientUsername string, amount float64, message, signature string) (*entity.Tip, error) {
	args := m.Called(sender, recipient, recipientUsername, amount, message, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tip), args.Error(1)
}

func (m *MockTipUseCase) ListTips() ([]*entity.Tip, float64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Tip), args.Get(1).(float64), args.Error(2)
}

var _ usecase.TipUseCase = (*MockTipUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRecordTip_Created(t *testing.T) {
	mockUseCase := new(MockTipUseCase)
	handler := NewTipHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tips", handler.RecordTip)

	mockTip := &entity.Tip{
		ID:                 "tip-1",
		Sender:             "addr1",
		Recipient:          "addr2",
		RecipientUsername:  "bob",
		Amount:             0.05,
		Message:            "great post!",
		Signature:          "sig-1",
		RewardPointsEarned: 50,
	}
	mockUseCase.On("RecordTip", "addr1", "addr2", "bob", 0.05, "great post!", "sig-1").Return(mockTip, nil)

	body := `{"sender":"addr1","recipient":"addr2","recipient_username":"bob","amount":0.05,"message":"great post!","signature":"sig-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(50), response["reward_points_earned"])
	assert.Equal(t, "Tip sent! You earned 50 reward points!", response["message"])

	mockUseCase.AssertExpectations(t)
}

func TestRecordTip_RejectsLongMessage(t *testing.T) {
	mockUseCase := new(MockTipUseCase)
	handler := NewTipHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tips", handler.RecordTip)

	longMessage := strings.Repeat("x", 281)
	body := `{"sender":"addr1","recipient":"addr2","amount":0.05,"message":"` + longMessage + `","signature":"sig-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "RecordTip", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordTip_RejectsMissingSignature(t *testing.T) {
	mockUseCase := new(MockTipUseCase)
	handler := NewTipHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tips", handler.RecordTip)

	body := `{"sender":"addr1","recipient":"addr2","amount":0.05}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTips_OK(t *testing.T) {
	mockUseCase := new(MockTipUseCase)
	handler := NewTipHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/tips", handler.ListTips)

	mockUseCase.On("ListTips").Return([]*entity.Tip{
		{ID: "tip-1", Sender: "addr1", Recipient: "addr2", Amount: 0.05},
	}, 0.05, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tips", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(0.05), response["total_tips"])
}

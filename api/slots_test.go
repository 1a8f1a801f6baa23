package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glossandgo/booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAvailabilityUseCase struct {
	mock.Mock
}

func (m *MockAvailabilityUseCase) ListOpen(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *MockAvailabilityUseCase) ListAll(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *MockAvailabilityUseCase) Add(ctx context.Context, date, timeOfDay string) (*domain.AvailabilitySlot, error) {
	args := m.Called(ctx, date, timeOfDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilitySlot), args.Error(1)
}

func (m *MockAvailabilityUseCase) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSlotHandler_listOpen(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewSlotHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/slots", nil)

	slots := []domain.AvailabilitySlot{
		{ID: "s1", Date: "2026-09-12", Time: "09:00"},
		{ID: "s2", Date: "2026-09-12", Time: "13:00"},
	}
	mockService.On("ListOpen", c.Request.Context()).Return(slots, nil)

	handler.listOpen(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.AvailabilitySlot
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "s1", response[0].ID)

	mockService.AssertExpectations(t)
}

func TestSlotHandler_create(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewSlotHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createSlotRequest{Date: "2026-09-12", Time: "10:00"})
	c.Request = httptest.NewRequest("POST", "/admin/slots", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	slot := &domain.AvailabilitySlot{ID: "s1", Date: "2026-09-12", Time: "10:00"}
	mockService.On("Add", c.Request.Context(), "2026-09-12", "10:00").Return(slot, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.AvailabilitySlot
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "s1", response.ID)

	mockService.AssertExpectations(t)
}

func TestSlotHandler_create_invalidDate(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewSlotHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createSlotRequest{Date: "someday", Time: "10:00"})
	c.Request = httptest.NewRequest("POST", "/admin/slots", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Add", c.Request.Context(), "someday", "10:00").Return(nil, assert.AnError)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestSlotHandler_remove_notFound(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewSlotHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("DELETE", "/admin/slots/missing", nil)

	mockService.On("Remove", c.Request.Context(), "missing").Return(domain.ErrSlotNotFound)

	handler.remove(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

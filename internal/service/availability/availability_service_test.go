package availability

import (
	"context"
	"testing"
	"time"

	"github.com/glossandgo/booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) ListAvailable(ctx context.Context, from string) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx, from)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *MockSlotRepository) List(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *MockSlotRepository) Get(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilitySlot), args.Error(1)
}

func (m *MockSlotRepository) Create(ctx context.Context, slot *domain.AvailabilitySlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockSlotRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSlotRepository) MarkBooked(ctx context.Context, slotID, bookingID string) error {
	args := m.Called(ctx, slotID, bookingID)
	return args.Error(0)
}

func (m *MockSlotRepository) Release(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func TestAvailabilityService_ListOpen_UsesToday(t *testing.T) {
	mockRepo := &MockSlotRepository{}
	service := NewAvailabilityService(mockRepo)

	ctx := context.Background()
	today := time.Now().Format("2006-01-02")
	slots := []domain.AvailabilitySlot{{ID: "s1", Date: today, Time: "09:00"}}

	mockRepo.On("ListAvailable", ctx, today).Return(slots, nil).Once()

	got, err := service.ListOpen(ctx)

	assert.NoError(t, err)
	assert.Equal(t, slots, got)
	mockRepo.AssertExpectations(t)
}

func TestAvailabilityService_Add_Success(t *testing.T) {
	mockRepo := &MockSlotRepository{}
	service := NewAvailabilityService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.AvailabilitySlot")).Return(nil).Once()

	slot, err := service.Add(ctx, "2026-09-12", "10:00")

	assert.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, "2026-09-12", slot.Date)
	assert.Equal(t, "10:00", slot.Time)
	assert.False(t, slot.IsBooked)
	mockRepo.AssertExpectations(t)
}

func TestAvailabilityService_Add_InvalidDate(t *testing.T) {
	service := NewAvailabilityService(&MockSlotRepository{})

	tests := []struct {
		name string
		date string
		time string
	}{
		{"bad date format", "12/09/2026", "10:00"},
		{"not a date", "someday", "10:00"},
		{"bad time format", "2026-09-12", "10am"},
		{"out of range time", "2026-09-12", "25:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := service.Add(context.Background(), tt.date, tt.time)
			assert.Error(t, err)
			assert.Nil(t, slot)
		})
	}
}

func TestAvailabilityService_Add_AllowsDuplicateTimes(t *testing.T) {
	mockRepo := &MockSlotRepository{}
	service := NewAvailabilityService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.AvailabilitySlot")).Return(nil).Twice()

	first, err := service.Add(ctx, "2026-09-12", "10:00")
	assert.NoError(t, err)
	second, err := service.Add(ctx, "2026-09-12", "10:00")
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	mockRepo.AssertExpectations(t)
}

func TestAvailabilityService_Remove_BookedSlot(t *testing.T) {
	mockRepo := &MockSlotRepository{}
	service := NewAvailabilityService(mockRepo)

	ctx := context.Background()
	slot := &domain.AvailabilitySlot{ID: "s1", Date: "2026-09-12", Time: "10:00", IsBooked: true, BookingID: "bk-1"}
	mockRepo.On("Get", ctx, "s1").Return(slot, nil).Once()
	mockRepo.On("Delete", ctx, "s1").Return(nil).Once()

	err := service.Remove(ctx, "s1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAvailabilityService_Remove_NotFound(t *testing.T) {
	mockRepo := &MockSlotRepository{}
	service := NewAvailabilityService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Get", ctx, "missing").Return(nil, domain.ErrSlotNotFound).Once()

	err := service.Remove(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

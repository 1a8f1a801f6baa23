package availability

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/glossandgo/booking/internal/domain"
	"github.com/glossandgo/booking/internal/repository"
	"github.com/google/uuid"
)

type AvailabilityUseCase interface {
	ListOpen(ctx context.Context) ([]domain.AvailabilitySlot, error)
	ListAll(ctx context.Context) ([]domain.AvailabilitySlot, error)
	Add(ctx context.Context, date, timeOfDay string) (*domain.AvailabilitySlot, error)
	Remove(ctx context.Context, id string) error
}

type AvailabilityService struct {
	slots repository.SlotRepository
}

func NewAvailabilityService(slots repository.SlotRepository) *AvailabilityService {
	return &AvailabilityService{slots: slots}
}

// ListOpen returns the slots a customer can still book: unbooked and
// dated today or later.
func (s *AvailabilityService) ListOpen(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	today := time.Now().Format("2006-01-02")
	return s.slots.ListAvailable(ctx, today)
}

// ListAll returns every slot, booked or not, for the admin calendar.
func (s *AvailabilityService) ListAll(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	return s.slots.List(ctx)
}

func (s *AvailabilityService) Add(ctx context.Context, date, timeOfDay string) (*domain.AvailabilitySlot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return nil, fmt.Errorf("invalid time %q: expected HH:MM", timeOfDay)
	}

	slot := &domain.AvailabilitySlot{
		ID:   uuid.NewString(),
		Date: date,
		Time: timeOfDay,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *AvailabilityService) Remove(ctx context.Context, id string) error {
	slot, err := s.slots.Get(ctx, id)
	if err != nil {
		return err
	}
	if slot.IsBooked {
		// Removing a booked slot leaves its booking without a time; the
		// admin listing still shows the booking's own date and time.
		log.Printf("availability: removing booked slot %s (booking %s)", slot.ID, slot.BookingID)
	}
	return s.slots.Delete(ctx, id)
}

var _ AvailabilityUseCase = (*AvailabilityService)(nil)

package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/glossandgo/booking/config"
	"github.com/glossandgo/booking/internal/domain"
	"github.com/glossandgo/booking/internal/kafka"
	"github.com/glossandgo/booking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)
	List(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type BookingService struct {
	bookings repository.BookingRepository
	slots    repository.SlotRepository
	producer Producer
	kafkaCfg config.KafkaConfig
}

func NewBookingService(bookings repository.BookingRepository, slots repository.SlotRepository, producer Producer, kafkaCfg config.KafkaConfig) *BookingService {
	return &BookingService{bookings: bookings, slots: slots, producer: producer, kafkaCfg: kafkaCfg}
}

type SubmitInput struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	VehicleType string
	Service     string
	SlotID      string
	Notes       string
}

type SubmitResult struct {
	Booking *domain.Booking
	// NotificationQueued is false when the booking was stored but the
	// notification event could not be published. The booking stands
	// either way.
	NotificationQueued bool
}

func (in SubmitInput) validate() error {
	switch {
	case in.Name == "":
		return fmt.Errorf("name is required")
	case in.Phone == "":
		return fmt.Errorf("phone is required")
	case in.Address == "":
		return fmt.Errorf("address is required")
	case in.VehicleType == "":
		return fmt.Errorf("vehicle type is required")
	case in.Service == "":
		return fmt.Errorf("service is required")
	case in.SlotID == "":
		return fmt.Errorf("slot is required")
	}
	return nil
}

// Submit claims the requested slot and stores the booking in one
// operation, then publishes the created event. A slot that was taken
// in the meantime surfaces as domain.ErrSlotUnavailable.
func (s *BookingService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	slot, err := s.slots.Get(ctx, in.SlotID)
	if err != nil {
		if err == domain.ErrSlotNotFound {
			return nil, domain.ErrSlotUnavailable
		}
		return nil, err
	}
	if slot.IsBooked {
		return nil, domain.ErrSlotUnavailable
	}

	b := &domain.Booking{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		VehicleType: in.VehicleType,
		Service:     in.Service,
		Date:        slot.Date,
		Time:        slot.Time,
		Notes:       in.Notes,
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.bookings.CreateWithSlot(ctx, b, slot.ID); err != nil {
		return nil, err
	}

	queued := s.publish(ctx, kafka.EventBookingCreated, b)
	return &SubmitResult{Booking: b, NotificationQueued: queued}, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	b, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if status == domain.BookingStatusCancelled {
		if err := s.slots.Release(ctx, id); err != nil {
			log.Printf("booking: failed to release slot for cancelled booking %s: %v", id, err)
		}
		s.publish(ctx, kafka.EventBookingCancelled, b)
	}
	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.slots.Release(ctx, id); err != nil {
		log.Printf("booking: failed to release slot for deleted booking %s: %v", id, err)
	}
	return nil
}

// publish sends the event to the booking and notifications topics.
// Publishing is best effort: the booking is already durable.
func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking) bool {
	if s.producer == nil {
		return false
	}

	payload, err := json.Marshal(kafka.BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
		Address:     b.Address,
		VehicleType: b.VehicleType,
		Service:     b.Service,
		Date:        b.Date,
		Time:        b.Time,
		Notes:       b.Notes,
		Status:      string(b.Status),
	})
	if err != nil {
		log.Printf("booking: failed to encode %s event for %s: %v", eventType, b.ID, err)
		return false
	}

	queued := true
	for _, topic := range []string{s.kafkaCfg.BookingTopic, s.kafkaCfg.NotificationsTopic} {
		if topic == "" {
			continue
		}
		if err := s.producer.Publish(ctx, topic, b.ID, payload); err != nil {
			log.Printf("booking: failed to publish %s to %s for %s: %v", eventType, topic, b.ID, err)
			queued = false
		}
	}
	return queued
}

var _ BookingUseCase = (*BookingService)(nil)

package cache

import (
	"context"
	"encoding/json"

	"github.com/glossandgo/booking/config"
	"github.com/glossandgo/booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Store is the local cache: whole collections serialized to JSON under
// fixed string keys. It has no query capability; callers load the full
// collection and filter in-process. When the durable backend is configured
// it acts as a trailing mirror, never as a second source of truth.
type Store struct {
	client *redis.Client
}

func NewStore(cfg config.RedisConfig) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *Store) GetSlots(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	var slots []domain.AvailabilitySlot
	if err := s.get(ctx, slotsKey(), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *Store) SetSlots(ctx context.Context, slots []domain.AvailabilitySlot) error {
	return s.set(ctx, slotsKey(), slots)
}

func (s *Store) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := s.get(ctx, bookingsKey(), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) SetBookings(ctx context.Context, bookings []domain.Booking) error {
	return s.set(ctx, bookingsKey(), bookings)
}

func (s *Store) GetContent(ctx context.Context) (*domain.SiteContent, error) {
	var content domain.SiteContent
	data, err := s.client.Get(ctx, contentKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *Store) SetContent(ctx context.Context, content *domain.SiteContent) error {
	return s.set(ctx, contentKey(), content)
}

func (s *Store) get(ctx context.Context, key string, dst interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func (s *Store) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, 0).Err()
}

func slotsKey() string {
	return "cache:slots"
}

func bookingsKey() string {
	return "cache:bookings"
}

func contentKey() string {
	return "cache:content"
}

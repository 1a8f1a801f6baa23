package repository

import (
	"context"

	"github.com/glossandgo/booking/internal/domain"
)

type CacheBookingRepository struct {
	cache Cache
}

func NewCacheBookingRepository(cache Cache) *CacheBookingRepository {
	return &CacheBookingRepository{cache: cache}
}

func (r *CacheBookingRepository) CreateWithSlot(ctx context.Context, booking *domain.Booking, slotID string) error {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return err
	}

	claimed := false
	for i := range slots {
		if slots[i].ID == slotID {
			if slots[i].IsBooked {
				return domain.ErrSlotUnavailable
			}
			slots[i].IsBooked = true
			slots[i].BookingID = booking.ID
			claimed = true
			break
		}
	}
	if !claimed {
		return domain.ErrSlotUnavailable
	}

	bookings, err := r.cache.GetBookings(ctx)
	if err != nil {
		return err
	}
	// Newest first, like the admin listing expects.
	bookings = append([]domain.Booking{*booking}, bookings...)

	if err := r.cache.SetBookings(ctx, bookings); err != nil {
		return err
	}
	return r.cache.SetSlots(ctx, slots)
}

func (r *CacheBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := r.cache.GetBookings(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = make([]domain.Booking, 0)
	}
	return bookings, nil
}

func (r *CacheBookingRepository) Get(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.cache.GetBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *CacheBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	bookings, err := r.cache.GetBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			if err := r.cache.SetBookings(ctx, bookings); err != nil {
				return nil, err
			}
			return &bookings[i], nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *CacheBookingRepository) Delete(ctx context.Context, id string) error {
	bookings, err := r.cache.GetBookings(ctx)
	if err != nil {
		return err
	}

	filtered := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	if len(filtered) == len(bookings) {
		return domain.ErrBookingNotFound
	}
	return r.cache.SetBookings(ctx, filtered)
}

// mirrorCreate copies a booking created on the remote backend into the
// local mirror, best effort. The local slot copy may be stale; a failed
// claim there is ignored rather than surfaced.
func (r *CacheBookingRepository) mirrorCreate(ctx context.Context, booking *domain.Booking, slotID string) {
	_ = r.CreateWithSlot(ctx, booking, slotID)
}

var _ BookingRepository = (*CacheBookingRepository)(nil)

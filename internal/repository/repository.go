package repository

import (
	"context"

	"github.com/glossandgo/booking/internal/domain"
)

// SlotRepository owns all mutation of the slot inventory. Both backends
// implement it; nothing else writes is_booked or booking_id.
type SlotRepository interface {
	// ListAvailable returns free slots with date >= from, ordered by date
	// then time. Dates are compared as plain strings.
	ListAvailable(ctx context.Context, from string) ([]domain.AvailabilitySlot, error)
	List(ctx context.Context) ([]domain.AvailabilitySlot, error)
	Get(ctx context.Context, id string) (*domain.AvailabilitySlot, error)
	Create(ctx context.Context, slot *domain.AvailabilitySlot) error
	// Delete removes the slot unconditionally, booked or not. Bookings that
	// reference it are left untouched.
	Delete(ctx context.Context, id string) error
	// MarkBooked claims the slot for a booking. It only succeeds if the slot
	// is currently free; a lost race yields domain.ErrSlotUnavailable.
	MarkBooked(ctx context.Context, slotID, bookingID string) error
	// Release frees the slot claimed by the given booking. Calling it for a
	// booking that holds no slot is a no-op.
	Release(ctx context.Context, bookingID string) error
}

type BookingRepository interface {
	// CreateWithSlot persists the booking and claims its slot as one unit,
	// so an interrupted submission can never leave a booking without a
	// booked slot. A slot already taken yields domain.ErrSlotUnavailable
	// and no booking is created.
	CreateWithSlot(ctx context.Context, booking *domain.Booking, slotID string) error
	List(ctx context.Context) ([]domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type ContentRepository interface {
	// Load returns the stored content, or (nil, nil) when nothing has been
	// saved yet.
	Load(ctx context.Context) (*domain.SiteContent, error)
	Save(ctx context.Context, content *domain.SiteContent) error
}

// Cache is the local cache collaborator: full-collection reads and writes
// only, JSON values under fixed keys.
type Cache interface {
	GetSlots(ctx context.Context) ([]domain.AvailabilitySlot, error)
	SetSlots(ctx context.Context, slots []domain.AvailabilitySlot) error
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	SetBookings(ctx context.Context, bookings []domain.Booking) error
	GetContent(ctx context.Context) (*domain.SiteContent, error)
	SetContent(ctx context.Context, content *domain.SiteContent) error
}

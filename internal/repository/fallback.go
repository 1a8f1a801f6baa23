package repository

import (
	"context"
	"log"

	"github.com/glossandgo/booking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The fallback repositories front a Postgres-backed repository with a
// cache-backed one. Reads and writes go to Postgres first; when a call
// fails there, the same call is served from the local cache instead, so
// a database outage degrades the site rather than taking it down.
// Successful remote reads and writes are mirrored into the cache, best
// effort, to keep the local copy fresh for the next fallback.

type FallbackSlotRepository struct {
	remote SlotRepository
	local  *CacheSlotRepository
}

func NewFallbackSlotRepository(remote SlotRepository, local *CacheSlotRepository) *FallbackSlotRepository {
	return &FallbackSlotRepository{remote: remote, local: local}
}

func (r *FallbackSlotRepository) ListAvailable(ctx context.Context, from string) ([]domain.AvailabilitySlot, error) {
	slots, err := r.remote.ListAvailable(ctx, from)
	if err != nil {
		log.Printf("slot repository: remote ListAvailable failed, serving local copy: %v", err)
		return r.local.ListAvailable(ctx, from)
	}
	return slots, nil
}

func (r *FallbackSlotRepository) List(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	slots, err := r.remote.List(ctx)
	if err != nil {
		log.Printf("slot repository: remote List failed, serving local copy: %v", err)
		return r.local.List(ctx)
	}
	_ = r.local.replaceAll(ctx, slots)
	return slots, nil
}

func (r *FallbackSlotRepository) Get(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	slot, err := r.remote.Get(ctx, id)
	if err != nil && !isDomainErr(err) {
		log.Printf("slot repository: remote Get failed, serving local copy: %v", err)
		return r.local.Get(ctx, id)
	}
	return slot, err
}

func (r *FallbackSlotRepository) Create(ctx context.Context, slot *domain.AvailabilitySlot) error {
	if err := r.remote.Create(ctx, slot); err != nil {
		log.Printf("slot repository: remote Create failed, writing local copy: %v", err)
		return r.local.Create(ctx, slot)
	}
	_ = r.local.Create(ctx, slot)
	return nil
}

func (r *FallbackSlotRepository) Delete(ctx context.Context, id string) error {
	if err := r.remote.Delete(ctx, id); err != nil {
		if isDomainErr(err) {
			return err
		}
		log.Printf("slot repository: remote Delete failed, deleting local copy: %v", err)
		return r.local.Delete(ctx, id)
	}
	_ = r.local.Delete(ctx, id)
	return nil
}

func (r *FallbackSlotRepository) MarkBooked(ctx context.Context, slotID, bookingID string) error {
	if err := r.remote.MarkBooked(ctx, slotID, bookingID); err != nil {
		if isDomainErr(err) {
			return err
		}
		log.Printf("slot repository: remote MarkBooked failed, marking local copy: %v", err)
		return r.local.MarkBooked(ctx, slotID, bookingID)
	}
	_ = r.local.MarkBooked(ctx, slotID, bookingID)
	return nil
}

func (r *FallbackSlotRepository) Release(ctx context.Context, bookingID string) error {
	if err := r.remote.Release(ctx, bookingID); err != nil {
		log.Printf("slot repository: remote Release failed, releasing local copy: %v", err)
		return r.local.Release(ctx, bookingID)
	}
	_ = r.local.Release(ctx, bookingID)
	return nil
}

type FallbackBookingRepository struct {
	remote BookingRepository
	local  *CacheBookingRepository
}

func NewFallbackBookingRepository(remote BookingRepository, local *CacheBookingRepository) *FallbackBookingRepository {
	return &FallbackBookingRepository{remote: remote, local: local}
}

func (r *FallbackBookingRepository) CreateWithSlot(ctx context.Context, booking *domain.Booking, slotID string) error {
	if err := r.remote.CreateWithSlot(ctx, booking, slotID); err != nil {
		if isDomainErr(err) {
			return err
		}
		log.Printf("booking repository: remote CreateWithSlot failed, writing local copy: %v", err)
		return r.local.CreateWithSlot(ctx, booking, slotID)
	}
	r.local.mirrorCreate(ctx, booking, slotID)
	return nil
}

func (r *FallbackBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := r.remote.List(ctx)
	if err != nil {
		log.Printf("booking repository: remote List failed, serving local copy: %v", err)
		return r.local.List(ctx)
	}
	_ = r.local.cache.SetBookings(ctx, bookings)
	return bookings, nil
}

func (r *FallbackBookingRepository) Get(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := r.remote.Get(ctx, id)
	if err != nil && !isDomainErr(err) {
		log.Printf("booking repository: remote Get failed, serving local copy: %v", err)
		return r.local.Get(ctx, id)
	}
	return booking, err
}

func (r *FallbackBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, err := r.remote.UpdateStatus(ctx, id, status)
	if err != nil {
		if isDomainErr(err) {
			return nil, err
		}
		log.Printf("booking repository: remote UpdateStatus failed, updating local copy: %v", err)
		return r.local.UpdateStatus(ctx, id, status)
	}
	_, _ = r.local.UpdateStatus(ctx, id, status)
	return booking, nil
}

func (r *FallbackBookingRepository) Delete(ctx context.Context, id string) error {
	if err := r.remote.Delete(ctx, id); err != nil {
		if isDomainErr(err) {
			return err
		}
		log.Printf("booking repository: remote Delete failed, deleting local copy: %v", err)
		return r.local.Delete(ctx, id)
	}
	_ = r.local.Delete(ctx, id)
	return nil
}

type FallbackContentRepository struct {
	remote ContentRepository
	local  *CacheContentRepository
}

func NewFallbackContentRepository(remote ContentRepository, local *CacheContentRepository) *FallbackContentRepository {
	return &FallbackContentRepository{remote: remote, local: local}
}

func (r *FallbackContentRepository) Load(ctx context.Context) (*domain.SiteContent, error) {
	content, err := r.remote.Load(ctx)
	if err != nil {
		log.Printf("content repository: remote Load failed, serving local copy: %v", err)
		return r.local.Load(ctx)
	}
	if content != nil {
		_ = r.local.Save(ctx, content)
	}
	return content, nil
}

func (r *FallbackContentRepository) Save(ctx context.Context, content *domain.SiteContent) error {
	if err := r.remote.Save(ctx, content); err != nil {
		log.Printf("content repository: remote Save failed, writing local copy: %v", err)
		return r.local.Save(ctx, content)
	}
	_ = r.local.Save(ctx, content)
	return nil
}

// isDomainErr reports whether err is an outcome of the operation rather
// than a backend failure. Domain outcomes must not trigger fallback:
// a slot that is taken in Postgres is taken, full stop.
func isDomainErr(err error) bool {
	switch err {
	case domain.ErrSlotUnavailable, domain.ErrSlotNotFound, domain.ErrBookingNotFound:
		return true
	}
	return false
}

// NewSlotRepository picks the backend arrangement from what is
// configured: with a database pool the repository is Postgres fronted
// by the cache mirror, without one it is cache only.
func NewSlotRepository(pool *pgxpool.Pool, cache Cache) SlotRepository {
	local := NewCacheSlotRepository(cache)
	if pool == nil {
		return local
	}
	return NewFallbackSlotRepository(NewPGSlotRepository(pool), local)
}

func NewBookingRepository(pool *pgxpool.Pool, cache Cache) BookingRepository {
	local := NewCacheBookingRepository(cache)
	if pool == nil {
		return local
	}
	return NewFallbackBookingRepository(NewPGBookingRepository(pool), local)
}

func NewContentRepository(pool *pgxpool.Pool, cache Cache) ContentRepository {
	local := NewCacheContentRepository(cache)
	if pool == nil {
		return local
	}
	return NewFallbackContentRepository(NewPGContentRepository(pool), local)
}

var (
	_ SlotRepository    = (*FallbackSlotRepository)(nil)
	_ BookingRepository = (*FallbackBookingRepository)(nil)
	_ ContentRepository = (*FallbackContentRepository)(nil)
)

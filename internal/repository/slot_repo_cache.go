package repository

import (
	"context"
	"sort"

	"github.com/glossandgo/booking/internal/domain"
)

// CacheSlotRepository runs every operation as a full-collection
// read-modify-write against the local cache. There is no locking here;
// single-client local mode is the expected use.
type CacheSlotRepository struct {
	cache Cache
}

func NewCacheSlotRepository(cache Cache) *CacheSlotRepository {
	return &CacheSlotRepository{cache: cache}
}

func (r *CacheSlotRepository) ListAvailable(ctx context.Context, from string) ([]domain.AvailabilitySlot, error) {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]domain.AvailabilitySlot, 0)
	for _, s := range slots {
		if !s.IsBooked && s.Date >= from {
			available = append(available, s)
		}
	}
	sortSlots(available)
	return available, nil
}

func (r *CacheSlotRepository) List(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = make([]domain.AvailabilitySlot, 0)
	}
	sortSlots(slots)
	return slots, nil
}

func (r *CacheSlotRepository) Get(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i], nil
		}
	}
	return nil, domain.ErrSlotNotFound
}

func (r *CacheSlotRepository) Create(ctx context.Context, slot *domain.AvailabilitySlot) error {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return err
	}
	slots = append(slots, *slot)
	sortSlots(slots)
	return r.cache.SetSlots(ctx, slots)
}

func (r *CacheSlotRepository) Delete(ctx context.Context, id string) error {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return err
	}

	filtered := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, s := range slots {
		if s.ID != id {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == len(slots) {
		return domain.ErrSlotNotFound
	}
	return r.cache.SetSlots(ctx, filtered)
}

func (r *CacheSlotRepository) MarkBooked(ctx context.Context, slotID, bookingID string) error {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return err
	}
	for i := range slots {
		if slots[i].ID == slotID {
			if slots[i].IsBooked {
				return domain.ErrSlotUnavailable
			}
			slots[i].IsBooked = true
			slots[i].BookingID = bookingID
			return r.cache.SetSlots(ctx, slots)
		}
	}
	return domain.ErrSlotUnavailable
}

func (r *CacheSlotRepository) Release(ctx context.Context, bookingID string) error {
	slots, err := r.cache.GetSlots(ctx)
	if err != nil {
		return err
	}
	for i := range slots {
		if slots[i].BookingID == bookingID {
			slots[i].IsBooked = false
			slots[i].BookingID = ""
			return r.cache.SetSlots(ctx, slots)
		}
	}
	// No slot holds this booking: already released or never claimed.
	return nil
}

// replaceAll refreshes the mirrored copy after a successful remote read.
func (r *CacheSlotRepository) replaceAll(ctx context.Context, slots []domain.AvailabilitySlot) error {
	return r.cache.SetSlots(ctx, slots)
}

func sortSlots(slots []domain.AvailabilitySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Time < slots[j].Time
	})
}

var _ SlotRepository = (*CacheSlotRepository)(nil)

package repository

import (
	"context"
	"errors"

	"github.com/glossandgo/booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGSlotRepository struct {
	db *pgxpool.Pool
}

func NewPGSlotRepository(db *pgxpool.Pool) *PGSlotRepository {
	return &PGSlotRepository{db: db}
}

func (r *PGSlotRepository) ListAvailable(ctx context.Context, from string) ([]domain.AvailabilitySlot, error) {
	rows, err := r.db.Query(ctx, `SELECT id, date, time, is_booked, COALESCE(booking_id, '') FROM availability_slots WHERE is_booked = false AND date >= $1 ORDER BY date, time`, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSlots(rows)
}

func (r *PGSlotRepository) List(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	rows, err := r.db.Query(ctx, `SELECT id, date, time, is_booked, COALESCE(booking_id, '') FROM availability_slots ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSlots(rows)
}

func (r *PGSlotRepository) Get(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	row := r.db.QueryRow(ctx, `SELECT id, date, time, is_booked, COALESCE(booking_id, '') FROM availability_slots WHERE id=$1`, id)
	var s domain.AvailabilitySlot
	if err := row.Scan(&s.ID, &s.Date, &s.Time, &s.IsBooked, &s.BookingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGSlotRepository) Create(ctx context.Context, slot *domain.AvailabilitySlot) error {
	_, err := r.db.Exec(ctx, `INSERT INTO availability_slots (id, date, time, is_booked) VALUES ($1, $2, $3, false)`, slot.ID, slot.Date, slot.Time)
	return err
}

func (r *PGSlotRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM availability_slots WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}

func (r *PGSlotRepository) MarkBooked(ctx context.Context, slotID, bookingID string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE availability_slots SET is_booked = true, booking_id = $1 WHERE id = $2 AND is_booked = false`, bookingID, slotID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSlotUnavailable
	}
	return nil
}

func (r *PGSlotRepository) Release(ctx context.Context, bookingID string) error {
	_, err := r.db.Exec(ctx, `UPDATE availability_slots SET is_booked = false, booking_id = NULL WHERE booking_id = $1`, bookingID)
	return err
}

func scanSlots(rows pgx.Rows) ([]domain.AvailabilitySlot, error) {
	slots := make([]domain.AvailabilitySlot, 0)
	for rows.Next() {
		var s domain.AvailabilitySlot
		if err := rows.Scan(&s.ID, &s.Date, &s.Time, &s.IsBooked, &s.BookingID); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

var _ SlotRepository = (*PGSlotRepository)(nil)

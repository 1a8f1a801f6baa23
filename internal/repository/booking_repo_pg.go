package repository

import (
	"context"
	"errors"

	"github.com/glossandgo/booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewPGBookingRepository(db *pgxpool.Pool) *PGBookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) CreateWithSlot(ctx context.Context, booking *domain.Booking, slotID string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Conditional claim: the update only matches while the slot is still
	// free, so two interleaved submissions cannot both claim it.
	cmd, err := tx.Exec(ctx, `UPDATE availability_slots SET is_booked = true, booking_id = $1 WHERE id = $2 AND is_booked = false`, booking.ID, slotID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSlotUnavailable
	}

	if _, err := tx.Exec(ctx, `INSERT INTO bookings (id, name, phone, email, address, vehicle_type, service, date, time, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		booking.ID, booking.Name, booking.Phone, booking.Email, booking.Address, booking.VehicleType,
		booking.Service, booking.Date, booking.Time, booking.Notes, booking.Status, booking.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, phone, email, address, vehicle_type, service, date, time, notes, status, created_at FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Email, &b.Address, &b.VehicleType, &b.Service, &b.Date, &b.Time, &b.Notes, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) Get(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, phone, email, address, vehicle_type, service, date, time, notes, status, created_at FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Name, &b.Phone, &b.Email, &b.Address, &b.VehicleType, &b.Service, &b.Date, &b.Time, &b.Notes, &b.Status, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE id=$2 RETURNING id, name, phone, email, address, vehicle_type, service, date, time, notes, status, created_at`, status, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Name, &b.Phone, &b.Email, &b.Address, &b.VehicleType, &b.Service, &b.Date, &b.Time, &b.Notes, &b.Status, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)

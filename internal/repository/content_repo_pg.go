package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/glossandgo/booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGContentRepository keeps the single site content record as a JSON
// document in a one-row table.
type PGContentRepository struct {
	db *pgxpool.Pool
}

func NewPGContentRepository(db *pgxpool.Pool) *PGContentRepository {
	return &PGContentRepository{db: db}
}

func (r *PGContentRepository) Load(ctx context.Context) (*domain.SiteContent, error) {
	row := r.db.QueryRow(ctx, `SELECT payload FROM site_content WHERE id = 1`)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var content domain.SiteContent
	if err := json.Unmarshal(payload, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *PGContentRepository) Save(ctx context.Context, content *domain.SiteContent) error {
	payload, err := json.Marshal(content)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO site_content (id, payload, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`, payload)
	return err
}

var _ ContentRepository = (*PGContentRepository)(nil)

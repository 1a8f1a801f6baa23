package repository

import (
	"context"

	"github.com/glossandgo/booking/internal/domain"
)

type CacheContentRepository struct {
	cache Cache
}

func NewCacheContentRepository(cache Cache) *CacheContentRepository {
	return &CacheContentRepository{cache: cache}
}

func (r *CacheContentRepository) Load(ctx context.Context) (*domain.SiteContent, error) {
	return r.cache.GetContent(ctx)
}

func (r *CacheContentRepository) Save(ctx context.Context, content *domain.SiteContent) error {
	return r.cache.SetContent(ctx, content)
}

var _ ContentRepository = (*CacheContentRepository)(nil)

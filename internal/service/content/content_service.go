package content

import (
	"context"
	"fmt"

	"github.com/glossandgo/booking/internal/domain"
	"github.com/glossandgo/booking/internal/repository"
)

type ContentUseCase interface {
	Load(ctx context.Context) (*domain.SiteContent, error)
	Save(ctx context.Context, c *domain.SiteContent) error
}

type ContentService struct {
	repo repository.ContentRepository
}

func NewContentService(repo repository.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// Load returns the stored site content, or the built-in default when
// nothing has been saved yet.
func (s *ContentService) Load(ctx context.Context) (*domain.SiteContent, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return domain.DefaultSiteContent(), nil
	}
	return stored, nil
}

func (s *ContentService) Save(ctx context.Context, c *domain.SiteContent) error {
	if c.SiteName == "" {
		return fmt.Errorf("site name is required")
	}
	return s.repo.Save(ctx, c)
}

var _ ContentUseCase = (*ContentService)(nil)

package courts

import (
	"context"
	"fmt"
	"time"

	"courtside/pkg/cache"
	"courtside/pkg/logger"
)

const catalogCacheKey = "courtside:courts:catalog"

// Service interface defines the contract for court catalog logic
type Service interface {
	GetCourt(ctx context.Context, id string) (*Court, error)
	ListCourts(ctx context.Context) ([]Court, error)

	// ConflictScope returns the court ids whose bookings contend with the
	// given court: the court itself plus every member of its shared group.
	ConflictScope(ctx context.Context, id string) ([]string, string, error)
}

type service struct {
	repo       Repository
	cache      cache.Service
	catalogTTL time.Duration
	log        *logger.Logger
}

func NewService(repo Repository, cacheSvc cache.Service, catalogTTL time.Duration) Service {
	return &service{
		repo:       repo,
		cache:      cacheSvc,
		catalogTTL: catalogTTL,
		log:        logger.GetDefault(),
	}
}

func (s *service) GetCourt(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCourts serves the catalog cache-aside; the catalog is admin-managed
// and long-lived, unlike availability which is never cached.
func (s *service) ListCourts(ctx context.Context) ([]Court, error) {
	if s.cache == nil {
		return s.repo.List(ctx, true)
	}

	var list []Court
	err := s.cache.GetOrSet(ctx, catalogCacheKey, s.catalogTTL, func() (interface{}, error) {
		return s.repo.List(ctx, true)
	}, &list)
	if err != nil {
		s.log.WarnContext(ctx, "court catalog cache unavailable, reading store directly")
		return s.repo.List(ctx, true)
	}
	return list, nil
}

func (s *service) ConflictScope(ctx context.Context, id string) ([]string, string, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if court.SharedGroup == "" {
		return []string{court.ID}, court.ConflictKey(), nil
	}

	members, err := s.repo.ListByGroup(ctx, court.SharedGroup)
	if err != nil {
		return nil, "", fmt.Errorf("failed to expand shared group %s: %w", court.SharedGroup, err)
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids, court.ConflictKey(), nil
}

// File: services/banner/banner.go
package banner

import (
	"context"
	"encoding/json"
	"time"

	bannerRepo "sprout/database/repository/banner"
	"sprout/models"
	"sprout/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const bannerCacheKey = "banners:all"

// BannerService returns the banners visible to a department right now.
type BannerService interface {
	VisibleBanners(ctx context.Context, department string) ([]models.Banner, error)
}

// DefaultBannerService caches the full banner list and filters per request,
// so one remote read serves every department.
type DefaultBannerService struct {
	Repo     bannerRepo.BannerRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Now      func() time.Time
}

// NewDefaultBannerService wires the service with the shared cache client.
func NewDefaultBannerService(repo bannerRepo.BannerRepository) *DefaultBannerService {
	return &DefaultBannerService{
		Repo:     repo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: 5 * time.Minute,
		Now:      time.Now,
	}
}

// VisibleBanners returns active banners for the department in priority order.
func (s *DefaultBannerService) VisibleBanners(ctx context.Context, department string) ([]models.Banner, error) {
	banners, err := s.allBanners(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now().UnixMilli()
	visible := []models.Banner{}
	for _, b := range banners {
		if b.VisibleAt(now, department) {
			visible = append(visible, b)
		}
	}
	return visible, nil
}

func (s *DefaultBannerService) allBanners(ctx context.Context) ([]models.Banner, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, bannerCacheKey).Result(); err == nil {
			var cached []models.Banner
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Warn("Banner cache read failed", zap.Error(err))
		}
	}

	banners, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(banners); err == nil {
			if err := s.Cache.Set(ctx, bannerCacheKey, data, s.CacheTTL).Err(); err != nil {
				logger.Warn("Banner cache write failed", zap.Error(err))
			}
		}
	}
	return banners, nil
}

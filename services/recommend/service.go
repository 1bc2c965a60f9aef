// File: services/recommend/service.go
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "sprout/database/repository/catalog"
	"sprout/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "recommend:ranked:"

// RecommendationService produces the ordered course list for a department and
// entry cohort.
type RecommendationService interface {
	Recommend(ctx context.Context, department, cohort string) ([]RankedCourse, error)
}

// DefaultRecommendationService ranks catalog courses and caches the result.
type DefaultRecommendationService struct {
	Catalog  catalogRepo.CatalogRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

// NewDefaultRecommendationService wires the service with the shared cache client.
func NewDefaultRecommendationService(catalog catalogRepo.CatalogRepository) *DefaultRecommendationService {
	return &DefaultRecommendationService{
		Catalog:  catalog,
		Cache:    utils.GetCacheClient(),
		CacheTTL: 30 * time.Minute,
	}
}

func cacheKey(department, cohort string) string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, department, cohort)
}

// Recommend returns the ranked course list, serving from the cache when the
// catalog was read recently. Cache faults fall through to the catalog.
func (s *DefaultRecommendationService) Recommend(ctx context.Context, department, cohort string) ([]RankedCourse, error) {
	logger := utils.GetLogger()
	key := cacheKey(department, cohort)

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached []RankedCourse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			logger.Warn("Stale recommendation cache entry", zap.String("key", key))
		} else if err != redis.Nil {
			logger.Warn("Recommendation cache read failed", zap.Error(err))
		}
	}

	courses, err := s.Catalog.GetRecommendedCourses(ctx, department, cohort)
	if err != nil {
		return nil, err
	}
	ranked := Rank(courses)

	if s.Cache != nil {
		if data, err := json.Marshal(ranked); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
				logger.Warn("Recommendation cache write failed", zap.Error(err))
			}
		}
	}
	return ranked, nil
}

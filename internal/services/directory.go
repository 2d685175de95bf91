package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SomSankar/omni-links/internal/metrics"
	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/repository"

	"github.com/redis/go-redis/v9"
)

const directoryCacheKey = "directory:profiles"

// DirectoryService lists every profile, most viewed first, for the landing page.
// Status is not filtered here, unlike slug resolution.
type DirectoryService struct {
	store  repository.ProfileRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewDirectoryService wires an optional Redis read-through cache. A nil rdb or
// a zero ttl disables caching.
func NewDirectoryService(store repository.ProfileRepository, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		store:  store,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *DirectoryService) cacheEnabled() bool {
	return s.rdb != nil && s.ttl > 0
}

func (s *DirectoryService) List(ctx context.Context) ([]models.Profile, error) {
	if s.cacheEnabled() {
		val, err := s.rdb.Get(ctx, directoryCacheKey).Bytes()
		switch {
		case err == nil:
			var profiles []models.Profile
			if err := json.Unmarshal(val, &profiles); err == nil {
				metrics.DirectoryCache.WithLabelValues(metrics.ResultHit).Inc()
				return profiles, nil
			}
			metrics.DirectoryCache.WithLabelValues(metrics.ResultError).Inc()
		case errors.Is(err, redis.Nil):
			metrics.DirectoryCache.WithLabelValues(metrics.ResultMiss).Inc()
		default:
			metrics.DirectoryCache.WithLabelValues(metrics.ResultError).Inc()
			s.logger.Debug("Directory cache read failed", "error", err)
		}
	}

	profiles, err := s.store.ListProfiles(ctx, repository.ProfileQuery{OrderBy: repository.ProfilesByViews})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	if s.cacheEnabled() {
		data, _ := json.Marshal(profiles)
		if err := s.rdb.Set(ctx, directoryCacheKey, data, s.ttl).Err(); err != nil {
			s.logger.Debug("Directory cache write failed", "error", err)
		}
	}

	return profiles, nil
}

// Invalidate drops the cached listing after a profile changes.
func (s *DirectoryService) Invalidate(ctx context.Context) {
	if s == nil || !s.cacheEnabled() {
		return
	}
	if err := s.rdb.Del(ctx, directoryCacheKey).Err(); err != nil {
		s.logger.Warn("Directory cache invalidation failed", "error", err)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SomSankar/omni-links/internal/metrics"
	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/repository"

	"github.com/google/uuid"
)

// ProfileView is what a visitor sees at /{slug}.
type ProfileView struct {
	Profile models.Profile `json:"profile"`
	Links   []models.Link  `json:"links"`
}

// ResolverService serves the public side: slug lookups and link click-throughs.
type ResolverService struct {
	store  repository.Store
	logger *slog.Logger
}

func NewResolverService(store repository.Store, logger *slog.Logger) *ResolverService {
	return &ResolverService{store: store, logger: logger}
}

// Resolve returns the active profile with the given slug and its active links
// sorted by order, counting one view. Inactive and missing profiles both
// yield ErrNotFound.
func (s *ResolverService) Resolve(ctx context.Context, slug string) (*ProfileView, error) {
	profile, err := s.store.GetProfileBySlug(ctx, slug, models.StatusActive)
	if errors.Is(err, repository.ErrNotFound) {
		metrics.ProfileResolutions.WithLabelValues(metrics.ResultNotFound).Inc()
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.ProfileResolutions.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("resolve profile %q: %w", slug, err)
	}

	// The increment is a single atomic UPDATE so concurrent visits are not lost.
	if err := s.store.IncrementProfileViews(ctx, profile.ID); err != nil {
		s.logger.Warn("Failed to count profile view", "profile_id", profile.ID, "error", err)
	} else {
		profile.Views++
	}

	links, err := s.store.ListLinks(ctx, profile.ID, models.StatusActive)
	if err != nil {
		metrics.ProfileResolutions.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("list links for %q: %w", slug, err)
	}
	if links == nil {
		links = []models.Link{}
	}

	metrics.ProfileResolutions.WithLabelValues(metrics.ResultFound).Inc()
	return &ProfileView{Profile: *profile, Links: links}, nil
}

// Lookup finds the active profile with the given slug without counting a view.
func (s *ResolverService) Lookup(ctx context.Context, slug string) (*models.Profile, error) {
	profile, err := s.store.GetProfileBySlug(ctx, slug, models.StatusActive)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// FollowLink counts a click on an active link of an active profile and
// returns its destination.
func (s *ResolverService) FollowLink(ctx context.Context, id uuid.UUID) (string, error) {
	link, err := s.store.GetLink(ctx, id)
	if err == nil {
		err = s.checkPublic(ctx, link)
	}
	if errors.Is(err, repository.ErrNotFound) {
		metrics.LinkClicks.WithLabelValues(metrics.ResultNotFound).Inc()
		return "", ErrNotFound
	}
	if err != nil {
		metrics.LinkClicks.WithLabelValues(metrics.ResultError).Inc()
		return "", fmt.Errorf("follow link %s: %w", id, err)
	}

	if err := s.store.IncrementLinkViews(ctx, link.ID); err != nil {
		s.logger.Warn("Failed to count link click", "link_id", link.ID, "error", err)
	}

	metrics.LinkClicks.WithLabelValues(metrics.ResultFound).Inc()
	return link.URL, nil
}

func (s *ResolverService) checkPublic(ctx context.Context, link *models.Link) error {
	if link.Status != models.StatusActive {
		return ErrNotFound
	}
	profile, err := s.store.GetProfile(ctx, link.ProfileID)
	if err != nil {
		return err
	}
	if profile.Status != models.StatusActive {
		return ErrNotFound
	}
	return nil
}

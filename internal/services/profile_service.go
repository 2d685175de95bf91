package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/repository"
	"github.com/SomSankar/omni-links/pkg/utils"

	"github.com/google/uuid"
)

const ProfilePageSize = 10

type ProfileInput struct {
	Name string
	Bio  string
	Slug string
}

// ProfileListing is one admin page of profiles sorted by name.
type ProfileListing struct {
	Profiles   []models.Profile `json:"profiles"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"total_pages"`
}

type ProfileService struct {
	store     repository.ProfileRepository
	directory *DirectoryService
}

func NewProfileService(store repository.ProfileRepository, directory *DirectoryService) *ProfileService {
	return &ProfileService{store: store, directory: directory}
}

func (s *ProfileService) List(ctx context.Context, page int) (*ProfileListing, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.store.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}

	profiles, err := s.store.ListProfiles(ctx, repository.ProfileQuery{
		OrderBy: repository.ProfilesByName,
		Limit:   ProfilePageSize,
		Offset:  utils.PageOffset(page, ProfilePageSize),
	})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	return &ProfileListing{
		Profiles:   profiles,
		Page:       page,
		PageSize:   ProfilePageSize,
		Total:      total,
		TotalPages: utils.TotalPages(total, ProfilePageSize),
	}, nil
}

// ListAll returns every profile sorted by name, for choosing whose links to manage.
func (s *ProfileService) ListAll(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.store.ListProfiles(ctx, repository.ProfileQuery{OrderBy: repository.ProfilesByName})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	return profiles, nil
}

func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.store.GetProfile(ctx, id)
}

func (s *ProfileService) Create(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	in, err := normalizeProfileInput(in)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Name:   in.Name,
		Bio:    in.Bio,
		Slug:   in.Slug,
		Status: models.StatusActive,
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.directory.Invalidate(ctx)
	return profile, nil
}

// Update replaces name, bio and slug together.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, in ProfileInput) (*models.Profile, error) {
	in, err := normalizeProfileInput(in)
	if err != nil {
		return nil, err
	}

	err = s.store.UpdateProfile(ctx, id, map[string]interface{}{
		"name": in.Name,
		"bio":  in.Bio,
		"slug": in.Slug,
	})
	if err != nil {
		return nil, err
	}

	s.directory.Invalidate(ctx)
	return s.store.GetProfile(ctx, id)
}

// Delete removes the profile. Its links go with it through the store's cascade.
func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteProfile(ctx, id); err != nil {
		return err
	}
	s.directory.Invalidate(ctx)
	return nil
}

func (s *ProfileService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.store.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	next := profile.Status.Toggle()
	if err := s.store.UpdateProfile(ctx, id, map[string]interface{}{"status": next}); err != nil {
		return nil, err
	}
	profile.Status = next

	s.directory.Invalidate(ctx)
	return profile, nil
}

func normalizeProfileInput(in ProfileInput) (ProfileInput, error) {
	in.Slug = utils.NormalizeSlug(in.Slug)
	if strings.TrimSpace(in.Name) == "" {
		return in, invalid("name", "name is required")
	}
	if strings.Trim(in.Slug, "-") == "" {
		return in, invalid("slug", "slug is required")
	}
	if utils.IsReservedSlug(in.Slug) {
		return in, invalid("slug", fmt.Sprintf("slug %q is reserved", in.Slug))
	}
	return in, nil
}

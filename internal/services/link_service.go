package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SomSankar/omni-links/internal/metrics"
	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/repository"

	"github.com/google/uuid"
)

type LinkInput struct {
	ProfileID uuid.UUID
	Title     string
	URL       string
	// Order is optional; zero appends after the profile's last link.
	Order int
}

// LinkListing is the admin view of one profile's links, inactive ones included.
type LinkListing struct {
	Profile     models.Profile `json:"profile"`
	Links       []models.Link  `json:"links"`
	ActiveCount int            `json:"active_count"`
}

type LinkService struct {
	store repository.Store
}

func NewLinkService(store repository.Store) *LinkService {
	return &LinkService{store: store}
}

func (s *LinkService) List(ctx context.Context, profileID uuid.UUID) (*LinkListing, error) {
	profile, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	links, err := s.store.ListLinks(ctx, profileID, "")
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	if links == nil {
		links = []models.Link{}
	}

	active := 0
	for _, l := range links {
		if l.Status == models.StatusActive {
			active++
		}
	}

	return &LinkListing{Profile: *profile, Links: links, ActiveCount: active}, nil
}

func (s *LinkService) Get(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	return s.store.GetLink(ctx, id)
}

func (s *LinkService) Create(ctx context.Context, in LinkInput) (*models.Link, error) {
	if in.ProfileID == uuid.Nil {
		return nil, invalid("profile_id", "please select a profile first")
	}
	if err := validateLinkInput(in); err != nil {
		return nil, err
	}
	if _, err := s.store.GetProfile(ctx, in.ProfileID); err != nil {
		return nil, err
	}

	link := &models.Link{
		ProfileID: in.ProfileID,
		Title:     strings.TrimSpace(in.Title),
		URL:       strings.TrimSpace(in.URL),
		Order:     in.Order,
		Status:    models.StatusActive,
	}
	if err := s.store.CreateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// Update replaces title and url together. Order, status and the hot flag are
// changed through their own operations.
func (s *LinkService) Update(ctx context.Context, id uuid.UUID, in LinkInput) (*models.Link, error) {
	if err := validateLinkInput(in); err != nil {
		return nil, err
	}

	err := s.store.UpdateLink(ctx, id, map[string]interface{}{
		"title": strings.TrimSpace(in.Title),
		"url":   strings.TrimSpace(in.URL),
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetLink(ctx, id)
}

func (s *LinkService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteLink(ctx, id)
}

func (s *LinkService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	link, err := s.store.GetLink(ctx, id)
	if err != nil {
		return nil, err
	}

	next := link.Status.Toggle()
	if err := s.store.UpdateLink(ctx, id, map[string]interface{}{"status": next}); err != nil {
		return nil, err
	}
	link.Status = next
	return link, nil
}

func (s *LinkService) ToggleHot(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	link, err := s.store.GetLink(ctx, id)
	if err != nil {
		return nil, err
	}

	next := !link.IsHot
	if err := s.store.UpdateLink(ctx, id, map[string]interface{}{"is_hot": next}); err != nil {
		return nil, err
	}
	link.IsHot = next
	return link, nil
}

// Reorder applies move to the profile's current links and rewrites every
// rank as 1..N in one transaction. The returned sequence reflects what was
// committed; on error nothing changed.
func (s *LinkService) Reorder(ctx context.Context, profileID uuid.UUID, move Move) ([]models.Link, error) {
	return s.reorder(ctx, profileID, func([]models.Link) (Move, error) {
		return move, nil
	})
}

// ReorderByIDs is Reorder for a drag of activeID dropped onto overID.
func (s *LinkService) ReorderByIDs(ctx context.Context, profileID, activeID, overID uuid.UUID) ([]models.Link, error) {
	return s.reorder(ctx, profileID, func(current []models.Link) (Move, error) {
		return MoveByIDs(current, activeID, overID)
	})
}

func (s *LinkService) reorder(ctx context.Context, profileID uuid.UUID, resolve func([]models.Link) (Move, error)) ([]models.Link, error) {
	links, err := s.applyMove(ctx, profileID, resolve)
	switch {
	case err == nil:
		metrics.LinkReorders.WithLabelValues(metrics.ResultSuccess).Inc()
		metrics.LinkReorderSize.Observe(float64(len(links)))
	case errors.Is(err, ErrStaleOrder):
		metrics.LinkReorders.WithLabelValues(metrics.ResultConflict).Inc()
	default:
		metrics.LinkReorders.WithLabelValues(metrics.ResultError).Inc()
	}
	return links, err
}

func (s *LinkService) applyMove(ctx context.Context, profileID uuid.UUID, resolve func([]models.Link) (Move, error)) ([]models.Link, error) {
	if _, err := s.store.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}

	current, err := s.store.ListLinks(ctx, profileID, "")
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	move, err := resolve(current)
	if err != nil {
		return nil, err
	}
	moved, err := MoveItem(current, move.From, move.To)
	if err != nil {
		return nil, err
	}

	ranked := Rerank(moved)
	if err := s.store.ReorderLinks(ctx, profileID, linkIDs(ranked)); err != nil {
		return nil, err
	}
	return ranked, nil
}

func validateLinkInput(in LinkInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "title is required")
	}
	if strings.TrimSpace(in.URL) == "" {
		return invalid("url", "url is required")
	}
	return nil
}

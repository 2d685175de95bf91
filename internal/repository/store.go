package repository

import (
	"context"
	"errors"

	"github.com/SomSankar/omni-links/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateSlug   = errors.New("slug already exists")
	ErrLinkSetMismatch = errors.New("link set changed since it was read")
)

type ProfileOrder int

const (
	ProfilesByName ProfileOrder = iota
	ProfilesByViews
)

// ProfileQuery selects a sorted window of profiles. A zero Limit means no limit.
type ProfileQuery struct {
	OrderBy ProfileOrder
	Limit   int
	Offset  int
}

// ProfileRepository is the profiles collection of the data store.
type ProfileRepository interface {
	ListProfiles(ctx context.Context, q ProfileQuery) ([]models.Profile, error)
	CountProfiles(ctx context.Context) (int64, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	// GetProfileBySlug matches on slug and, when status is non-empty, on status.
	GetProfileBySlug(ctx context.Context, slug string, status models.Status) (*models.Profile, error)
	CreateProfile(ctx context.Context, p *models.Profile) error
	UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// DeleteProfile removes the profile; the store cascades the delete to its links.
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	IncrementProfileViews(ctx context.Context, id uuid.UUID) error
}

// LinkRepository is the links collection of the data store.
type LinkRepository interface {
	// ListLinks returns a profile's links sorted by order. An empty status returns every link.
	ListLinks(ctx context.Context, profileID uuid.UUID, status models.Status) ([]models.Link, error)
	GetLink(ctx context.Context, id uuid.UUID) (*models.Link, error)
	// CreateLink appends the link after the profile's last one when l.Order is not set.
	CreateLink(ctx context.Context, l *models.Link) error
	UpdateLink(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteLink(ctx context.Context, id uuid.UUID) error
	IncrementLinkViews(ctx context.Context, id uuid.UUID) error
	// ReorderLinks atomically assigns order i+1 to orderedIDs[i]. orderedIDs must
	// hold exactly the profile's current link ids, otherwise ErrLinkSetMismatch.
	ReorderLinks(ctx context.Context, profileID uuid.UUID, orderedIDs []uuid.UUID) error
}

type Store interface {
	ProfileRepository
	LinkRepository
}

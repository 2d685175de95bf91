package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/repository"
	"github.com/SomSankar/omni-links/internal/repository/repotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStore(t *testing.T) (*repository.GormStore, *gorm.DB) {
	db := repotest.NewDB(t)
	return repository.NewGormStore(db), db
}

func createProfile(t *testing.T, store repository.Store, name, slug string, views int64, status models.Status) *models.Profile {
	t.Helper()
	p := &models.Profile{Name: name, Slug: slug, Views: views, Status: status}
	require.NoError(t, store.CreateProfile(context.Background(), p))
	return p
}

func createLinks(t *testing.T, store repository.Store, profileID uuid.UUID, titles ...string) []*models.Link {
	t.Helper()
	links := make([]*models.Link, 0, len(titles))
	for _, title := range titles {
		l := &models.Link{ProfileID: profileID, Title: title, URL: "https://example.com/" + title}
		require.NoError(t, store.CreateLink(context.Background(), l))
		links = append(links, l)
	}
	return links
}

func titles(links []models.Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Title
	}
	return out
}

func orders(links []models.Link) []int {
	out := make([]int, len(links))
	for i, l := range links {
		out[i] = l.Order
	}
	return out
}

// faultyStore fails the named operations and delegates the rest.
type faultyStore struct {
	repository.Store
	fail map[string]error
}

func newFaultyStore(inner repository.Store) *faultyStore {
	return &faultyStore{Store: inner, fail: map[string]error{}}
}

func (f *faultyStore) ListProfiles(ctx context.Context, q repository.ProfileQuery) ([]models.Profile, error) {
	if err := f.fail["ListProfiles"]; err != nil {
		return nil, err
	}
	return f.Store.ListProfiles(ctx, q)
}

func (f *faultyStore) CountProfiles(ctx context.Context) (int64, error) {
	if err := f.fail["CountProfiles"]; err != nil {
		return 0, err
	}
	return f.Store.CountProfiles(ctx)
}

func (f *faultyStore) GetProfileBySlug(ctx context.Context, slug string, status models.Status) (*models.Profile, error) {
	if err := f.fail["GetProfileBySlug"]; err != nil {
		return nil, err
	}
	return f.Store.GetProfileBySlug(ctx, slug, status)
}

func (f *faultyStore) UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if err := f.fail["UpdateProfile"]; err != nil {
		return err
	}
	return f.Store.UpdateProfile(ctx, id, fields)
}

func (f *faultyStore) IncrementProfileViews(ctx context.Context, id uuid.UUID) error {
	if err := f.fail["IncrementProfileViews"]; err != nil {
		return err
	}
	return f.Store.IncrementProfileViews(ctx, id)
}

func (f *faultyStore) ListLinks(ctx context.Context, profileID uuid.UUID, status models.Status) ([]models.Link, error) {
	if err := f.fail["ListLinks"]; err != nil {
		return nil, err
	}
	return f.Store.ListLinks(ctx, profileID, status)
}

func (f *faultyStore) CreateLink(ctx context.Context, l *models.Link) error {
	if err := f.fail["CreateLink"]; err != nil {
		return err
	}
	return f.Store.CreateLink(ctx, l)
}

func (f *faultyStore) UpdateLink(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if err := f.fail["UpdateLink"]; err != nil {
		return err
	}
	return f.Store.UpdateLink(ctx, id, fields)
}

func (f *faultyStore) IncrementLinkViews(ctx context.Context, id uuid.UUID) error {
	if err := f.fail["IncrementLinkViews"]; err != nil {
		return err
	}
	return f.Store.IncrementLinkViews(ctx, id)
}

func (f *faultyStore) ReorderLinks(ctx context.Context, profileID uuid.UUID, orderedIDs []uuid.UUID) error {
	if err := f.fail["ReorderLinks"]; err != nil {
		return err
	}
	return f.Store.ReorderLinks(ctx, profileID, orderedIDs)
}

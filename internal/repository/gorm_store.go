package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/SomSankar/omni-links/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) ListProfiles(ctx context.Context, q ProfileQuery) ([]models.Profile, error) {
	tx := s.db.WithContext(ctx).Model(&models.Profile{})
	switch q.OrderBy {
	case ProfilesByViews:
		tx = tx.Order("views desc").Order("name asc")
	default:
		tx = tx.Order("name asc")
	}
	tx = tx.Order("id asc")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	var profiles []models.Profile
	if err := tx.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *GormStore) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Profile{}).Count(&count).Error
	return count, err
}

func (s *GormStore) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (s *GormStore) GetProfileBySlug(ctx context.Context, slug string, status models.Status) (*models.Profile, error) {
	tx := s.db.WithContext(ctx).Where("slug = ?", slug)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var p models.Profile
	if err := tx.First(&p).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (s *GormStore) CreateProfile(ctx context.Context, p *models.Profile) error {
	return translateError(s.db.WithContext(ctx).Create(p).Error)
}

func (s *GormStore) UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) IncrementProfileViews(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListLinks(ctx context.Context, profileID uuid.UUID, status models.Status) ([]models.Link, error) {
	tx := s.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var links []models.Link
	if err := tx.Order("sort_order asc").Order("created_at asc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *GormStore) GetLink(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	var l models.Link
	if err := s.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &l, nil
}

func (s *GormStore) CreateLink(ctx context.Context, l *models.Link) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if l.Order <= 0 {
			var last int
			if err := tx.Model(&models.Link{}).
				Where("profile_id = ?", l.ProfileID).
				Select("COALESCE(MAX(sort_order), 0)").
				Scan(&last).Error; err != nil {
				return err
			}
			l.Order = last + 1
		}
		return tx.Create(l).Error
	})
}

func (s *GormStore) UpdateLink(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := s.db.WithContext(ctx).Model(&models.Link{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteLink(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Link{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) IncrementLinkViews(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.Link{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ReorderLinks(ctx context.Context, profileID uuid.UUID, orderedIDs []uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []uuid.UUID
		if err := tx.Model(&models.Link{}).Where("profile_id = ?", profileID).Pluck("id", &current).Error; err != nil {
			return err
		}
		if !sameIDSet(current, orderedIDs) {
			return ErrLinkSetMismatch
		}

		for i, id := range orderedIDs {
			if err := tx.Model(&models.Link{}).Where("id = ?", id).Update("sort_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uuid.UUID]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlug
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value") {
		return ErrDuplicateSlug
	}
	return err
}

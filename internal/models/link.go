package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Link struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_links_profile_order,priority:1" json:"profile_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	URL       string    `gorm:"not null;type:text" json:"url"`
	Order     int       `gorm:"column:sort_order;not null;default:0;index:idx_links_profile_order,priority:2" json:"order"`
	IsHot     bool      `gorm:"not null;default:false" json:"is_hot"`
	Views     int64     `gorm:"not null;default:0" json:"views"`
	Status    Status    `gorm:"size:16;not null;default:'active';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Link) TableName() string {
	return "links"
}

func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = StatusActive
	}
	return nil
}

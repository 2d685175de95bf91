package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Slug      string    `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Views     int64     `gorm:"not null;default:0" json:"views"`
	Status    Status    `gorm:"size:16;not null;default:'active';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Links []Link `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	return nil
}

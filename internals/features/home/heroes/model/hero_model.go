package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HeroModel drives the homepage carousel; slides render in hero_order.
type HeroModel struct {
	HeroID        string                      `gorm:"column:hero_id;primaryKey;type:uuid" json:"hero_id"`
	HeroTitle     string                      `gorm:"column:hero_title;type:varchar(255);not null" json:"hero_title"`
	HeroSubtitle  string                      `gorm:"column:hero_subtitle;type:text" json:"hero_subtitle"`
	HeroImageURL  string                      `gorm:"column:hero_image_url;type:text;not null" json:"hero_image_url"`
	HeroTagIDs    datatypes.JSONSlice[string] `gorm:"column:hero_tag_ids" json:"hero_tag_ids"`
	HeroOrder     int                         `gorm:"column:hero_order;default:0" json:"hero_order"`
	HeroIsActive  bool                        `gorm:"column:hero_is_active;default:true" json:"hero_is_active"`
	HeroCreatedAt time.Time                   `gorm:"column:hero_created_at;autoCreateTime" json:"hero_created_at"`
	HeroUpdatedAt time.Time                   `gorm:"column:hero_updated_at;autoUpdateTime" json:"hero_updated_at"`
}

func (HeroModel) TableName() string {
	return "heroes"
}

func (HeroModel) PrimaryColumn() string {
	return "hero_id"
}

func (m *HeroModel) BeforeCreate(tx *gorm.DB) error {
	if m.HeroID == "" {
		m.HeroID = uuid.NewString()
	}
	return nil
}

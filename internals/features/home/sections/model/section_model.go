package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	heroModel "yayasanku_backend/internals/features/home/heroes/model"
)

type SectionModel struct {
	SectionID          string                      `gorm:"column:section_id;primaryKey;type:uuid" json:"section_id"`
	SectionTitle       string                      `gorm:"column:section_title;type:varchar(255);not null" json:"section_title"`
	SectionSubtitle    string                      `gorm:"column:section_subtitle;type:text" json:"section_subtitle"`
	SectionDescription string                      `gorm:"column:section_description;type:text" json:"section_description"`
	SectionImageURL    string                      `gorm:"column:section_image_url;type:text" json:"section_image_url"`
	SectionHeroID      *string                     `gorm:"column:section_hero_id;type:uuid" json:"section_hero_id"`
	SectionTagName     string                      `gorm:"column:section_tag_name;type:varchar(120)" json:"section_tag_name"`
	SectionTagIDs      datatypes.JSONSlice[string] `gorm:"column:section_tag_ids" json:"section_tag_ids"`
	SectionIsActive    bool                        `gorm:"column:section_is_active;default:true" json:"section_is_active"`
	SectionOrder       int                         `gorm:"column:section_order;default:0" json:"section_order"`
	SectionCreatedAt   time.Time                   `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt   time.Time                   `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at"`

	Hero *heroModel.HeroModel `gorm:"foreignKey:SectionHeroID;references:HeroID;constraint:OnDelete:SET NULL" json:"hero,omitempty"`
}

func (SectionModel) TableName() string {
	return "sections"
}

func (SectionModel) PrimaryColumn() string {
	return "section_id"
}

func (m *SectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SectionID == "" {
		m.SectionID = uuid.NewString()
	}
	return nil
}

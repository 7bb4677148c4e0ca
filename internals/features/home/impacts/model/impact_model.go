package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	tagModel "yayasanku_backend/internals/features/tags/model"
)

// ImpactModel drives the homepage counters (beneficiaries, centres, ...).
type ImpactModel struct {
	ImpactID        string                      `gorm:"column:impact_id;primaryKey;type:uuid" json:"impact_id"`
	ImpactValue     int64                       `gorm:"column:impact_value;default:0" json:"impact_value"`
	ImpactTitle     string                      `gorm:"column:impact_title;type:varchar(255);not null" json:"impact_title"`
	ImpactSubtitle  string                      `gorm:"column:impact_subtitle;type:text" json:"impact_subtitle"`
	ImpactTagID     *string                     `gorm:"column:impact_tag_id;type:uuid" json:"impact_tag_id"`
	ImpactTagIDs    datatypes.JSONSlice[string] `gorm:"column:impact_tag_ids" json:"impact_tag_ids"`
	ImpactIsActive  bool                        `gorm:"column:impact_is_active;default:true" json:"impact_is_active"`
	ImpactOrder     int                         `gorm:"column:impact_order;default:0" json:"impact_order"`
	ImpactCreatedAt time.Time                   `gorm:"column:impact_created_at;autoCreateTime" json:"impact_created_at"`
	ImpactUpdatedAt time.Time                   `gorm:"column:impact_updated_at;autoUpdateTime" json:"impact_updated_at"`

	Tag *tagModel.TagModel `gorm:"foreignKey:ImpactTagID;references:TagID;constraint:OnDelete:SET NULL" json:"tag,omitempty"`
}

func (ImpactModel) TableName() string {
	return "impacts"
}

func (ImpactModel) PrimaryColumn() string {
	return "impact_id"
}

func (m *ImpactModel) BeforeCreate(tx *gorm.DB) error {
	if m.ImpactID == "" {
		m.ImpactID = uuid.NewString()
	}
	return nil
}

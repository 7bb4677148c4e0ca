package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	tagModel "yayasanku_backend/internals/features/tags/model"
)

// CoordinatesModel is a reusable contact block (phone/email/address/map).
type CoordinatesModel struct {
	CoordinatesID        string    `gorm:"column:coordinates_id;primaryKey;type:uuid" json:"coordinates_id"`
	CoordinatesPhone     string    `gorm:"column:coordinates_phone;type:varchar(40)" json:"coordinates_phone"`
	CoordinatesEmail     string    `gorm:"column:coordinates_email;type:varchar(255)" json:"coordinates_email"`
	CoordinatesAddress   string    `gorm:"column:coordinates_address;type:text" json:"coordinates_address"`
	CoordinatesTagID     *string   `gorm:"column:coordinates_tag_id;type:uuid" json:"coordinates_tag_id"`
	CoordinatesMapURL    string    `gorm:"column:coordinates_map_url;type:text" json:"coordinates_map_url"`
	CoordinatesOrder     int       `gorm:"column:coordinates_order;default:0" json:"coordinates_order"`
	CoordinatesIsActive  bool      `gorm:"column:coordinates_is_active;default:true" json:"coordinates_is_active"`
	CoordinatesCreatedAt time.Time `gorm:"column:coordinates_created_at;autoCreateTime" json:"coordinates_created_at"`
	CoordinatesUpdatedAt time.Time `gorm:"column:coordinates_updated_at;autoUpdateTime" json:"coordinates_updated_at"`

	Tag *tagModel.TagModel `gorm:"foreignKey:CoordinatesTagID;references:TagID;constraint:OnDelete:SET NULL" json:"tag,omitempty"`
}

func (CoordinatesModel) TableName() string {
	return "coordinates"
}

func (CoordinatesModel) PrimaryColumn() string {
	return "coordinates_id"
}

func (m *CoordinatesModel) BeforeCreate(tx *gorm.DB) error {
	if m.CoordinatesID == "" {
		m.CoordinatesID = uuid.NewString()
	}
	return nil
}

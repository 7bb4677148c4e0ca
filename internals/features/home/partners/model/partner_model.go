package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PartnerModel struct {
	PartnerID           string                      `gorm:"column:partner_id;primaryKey;type:uuid" json:"partner_id"`
	PartnerTitle        string                      `gorm:"column:partner_title;type:varchar(255);not null" json:"partner_title"`
	PartnerSubtitle     string                      `gorm:"column:partner_subtitle;type:text" json:"partner_subtitle"`
	PartnerDescription  string                      `gorm:"column:partner_description;type:text" json:"partner_description"`
	PartnerImageURL     string                      `gorm:"column:partner_image_url;type:text" json:"partner_image_url"`
	PartnerTagIDs       datatypes.JSONSlice[string] `gorm:"column:partner_tag_ids" json:"partner_tag_ids"`
	PartnerOrder        int                         `gorm:"column:partner_order;default:0" json:"partner_order"`
	PartnerIsActive     bool                        `gorm:"column:partner_is_active;default:true" json:"partner_is_active"`
	PartnerWebsiteURL   string                      `gorm:"column:partner_website_url;type:text" json:"partner_website_url"`
	PartnerContactEmail string                      `gorm:"column:partner_contact_email;type:varchar(255)" json:"partner_contact_email"`
	PartnerContactPhone string                      `gorm:"column:partner_contact_phone;type:varchar(40)" json:"partner_contact_phone"`
	PartnerCreatedAt    time.Time                   `gorm:"column:partner_created_at;autoCreateTime" json:"partner_created_at"`
	PartnerUpdatedAt    time.Time                   `gorm:"column:partner_updated_at;autoUpdateTime" json:"partner_updated_at"`
}

func (PartnerModel) TableName() string {
	return "partners"
}

func (PartnerModel) PrimaryColumn() string {
	return "partner_id"
}

func (m *PartnerModel) BeforeCreate(tx *gorm.DB) error {
	if m.PartnerID == "" {
		m.PartnerID = uuid.NewString()
	}
	return nil
}

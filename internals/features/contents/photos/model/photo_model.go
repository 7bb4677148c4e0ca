package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PhotoStatusDraft     = "draft"
	PhotoStatusPublished = "published"
	PhotoStatusArchived  = "archived"

	PhotoDefaultCategory = "General"
)

type PhotoModel struct {
	PhotoID           string                      `gorm:"column:photo_id;primaryKey;type:uuid" json:"photo_id"`
	PhotoTitle        string                      `gorm:"column:photo_title;type:varchar(255);not null" json:"photo_title"`
	PhotoDescription  *string                     `gorm:"column:photo_description;type:text" json:"photo_description"`
	PhotoImageURL     string                      `gorm:"column:photo_image_url;type:text;not null" json:"photo_image_url"`
	PhotoThumbnailURL *string                     `gorm:"column:photo_thumbnail_url;type:text" json:"photo_thumbnail_url"`
	PhotoCategory     string                      `gorm:"column:photo_category;type:varchar(120);default:General" json:"photo_category"`
	PhotoIsFeatured   bool                        `gorm:"column:photo_is_featured;default:false" json:"photo_is_featured"`
	PhotoStatus       string                      `gorm:"column:photo_status;type:varchar(20);default:published" json:"photo_status"`
	PhotoGalleryURLs  datatypes.JSONSlice[string] `gorm:"column:photo_gallery_urls" json:"photo_gallery_urls"`
	PhotoTagIDs       datatypes.JSONSlice[string] `gorm:"column:photo_tag_ids" json:"photo_tag_ids"`
	PhotoPublishedAt  *time.Time                  `gorm:"column:photo_published_at" json:"photo_published_at"`
	PhotoCreatedAt    time.Time                   `gorm:"column:photo_created_at;autoCreateTime" json:"photo_created_at"`
	PhotoUpdatedAt    time.Time                   `gorm:"column:photo_updated_at;autoUpdateTime" json:"photo_updated_at"`
}

func (PhotoModel) TableName() string {
	return "photos"
}

func (PhotoModel) PrimaryColumn() string {
	return "photo_id"
}

func (m *PhotoModel) BeforeCreate(tx *gorm.DB) error {
	if m.PhotoID == "" {
		m.PhotoID = uuid.NewString()
	}
	return nil
}

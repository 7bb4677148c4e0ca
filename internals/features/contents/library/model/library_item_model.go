package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LibraryItemStatusDraft     = "draft"
	LibraryItemStatusPublished = "published"
	LibraryItemStatusArchived  = "archived"
)

type LibraryItemModel struct {
	LibraryItemID          string                      `gorm:"column:library_item_id;primaryKey;type:uuid" json:"library_item_id"`
	LibraryItemTitle       string                      `gorm:"column:library_item_title;type:varchar(255);not null" json:"library_item_title"`
	LibraryItemDescription string                      `gorm:"column:library_item_description;type:text" json:"library_item_description"`
	LibraryItemFileURL     string                      `gorm:"column:library_item_file_url;type:text;not null" json:"library_item_file_url"`
	LibraryItemFileName    string                      `gorm:"column:library_item_file_name;type:varchar(255)" json:"library_item_file_name"`
	LibraryItemFileSize    int64                       `gorm:"column:library_item_file_size;default:0" json:"library_item_file_size"`
	LibraryItemFileType    string                      `gorm:"column:library_item_file_type;type:varchar(120)" json:"library_item_file_type"`
	LibraryItemCategory    string                      `gorm:"column:library_item_category;type:varchar(120);default:General" json:"library_item_category"`
	LibraryItemDownloads   int                         `gorm:"column:library_item_downloads;default:0" json:"library_item_downloads"`
	LibraryItemIsFeatured  bool                        `gorm:"column:library_item_is_featured;default:false" json:"library_item_is_featured"`
	LibraryItemStatus      string                      `gorm:"column:library_item_status;type:varchar(20);default:draft" json:"library_item_status"`
	LibraryItemAuthor      string                      `gorm:"column:library_item_author;type:varchar(120)" json:"library_item_author"`
	LibraryItemTagIDs      datatypes.JSONSlice[string] `gorm:"column:library_item_tag_ids" json:"library_item_tag_ids"`
	LibraryItemCreatedAt   time.Time                   `gorm:"column:library_item_created_at;autoCreateTime" json:"library_item_created_at"`
	LibraryItemUpdatedAt   time.Time                   `gorm:"column:library_item_updated_at;autoUpdateTime" json:"library_item_updated_at"`
}

func (LibraryItemModel) TableName() string {
	return "library_items"
}

func (LibraryItemModel) PrimaryColumn() string {
	return "library_item_id"
}

func (m *LibraryItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.LibraryItemID == "" {
		m.LibraryItemID = uuid.NewString()
	}
	return nil
}

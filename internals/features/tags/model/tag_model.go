package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagModel struct {
	TagID        string    `gorm:"column:tag_id;primaryKey;type:uuid" json:"tag_id"`
	TagName      string    `gorm:"column:tag_name;type:varchar(120);uniqueIndex;not null" json:"tag_name"`
	TagColor     string    `gorm:"column:tag_color;type:varchar(20);default:#2563eb" json:"tag_color"`
	TagCreatedAt time.Time `gorm:"column:tag_created_at;autoCreateTime" json:"tag_created_at"`
	TagUpdatedAt time.Time `gorm:"column:tag_updated_at;autoUpdateTime" json:"tag_updated_at"`
}

func (TagModel) TableName() string {
	return "tags"
}

func (TagModel) PrimaryColumn() string {
	return "tag_id"
}

func (m *TagModel) BeforeCreate(tx *gorm.DB) error {
	if m.TagID == "" {
		m.TagID = uuid.NewString()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
	ArticleStatusArchived  = "archived"
)

type ArticleModel struct {
	ArticleID          string                      `gorm:"column:article_id;primaryKey;type:uuid" json:"article_id"`
	ArticleTitle       string                      `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	ArticleContent     string                      `gorm:"column:article_content;type:text;not null" json:"article_content"`
	ArticleExcerpt     string                      `gorm:"column:article_excerpt;type:text" json:"article_excerpt"`
	ArticleImageURLs   datatypes.JSONSlice[string] `gorm:"column:article_image_urls" json:"article_image_urls"`
	ArticleAuthor      string                      `gorm:"column:article_author;type:varchar(120)" json:"article_author"`
	ArticleTagIDs      datatypes.JSONSlice[string] `gorm:"column:article_tag_ids" json:"article_tag_ids"`
	ArticleIsFeatured  bool                        `gorm:"column:article_is_featured;default:false" json:"article_is_featured"`
	ArticleStatus      string                      `gorm:"column:article_status;type:varchar(20);default:draft" json:"article_status"`
	ArticlePublishedAt *time.Time                  `gorm:"column:article_published_at" json:"article_published_at"`
	ArticleCreatedAt   time.Time                   `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt   time.Time                   `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (ArticleModel) PrimaryColumn() string {
	return "article_id"
}

func (m *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArticleID == "" {
		m.ArticleID = uuid.NewString()
	}
	return nil
}

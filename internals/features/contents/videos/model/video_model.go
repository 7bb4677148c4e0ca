package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	VideoStatusDraft     = "draft"
	VideoStatusPublished = "published"
	VideoStatusArchived  = "archived"

	VideoSourceUpload   = "upload"
	VideoSourceYoutube  = "youtube"
	VideoSourceFacebook = "facebook"
)

type VideoModel struct {
	VideoID           string                      `gorm:"column:video_id;primaryKey;type:uuid" json:"video_id"`
	VideoTitle        string                      `gorm:"column:video_title;type:varchar(255);not null" json:"video_title"`
	VideoDescription  string                      `gorm:"column:video_description;type:text" json:"video_description"`
	VideoExcerpt      string                      `gorm:"column:video_excerpt;type:text" json:"video_excerpt"`
	VideoFileURL      *string                     `gorm:"column:video_file_url;type:text" json:"video_file_url"`
	VideoThumbnailURL *string                     `gorm:"column:video_thumbnail_url;type:text" json:"video_thumbnail_url"`
	VideoSource       string                      `gorm:"column:video_source;type:varchar(20);default:upload" json:"video_source"`
	VideoYoutubeID    *string                     `gorm:"column:video_youtube_id;type:varchar(32)" json:"video_youtube_id"`
	VideoFacebookEmbed *string                    `gorm:"column:video_facebook_embed;type:text" json:"video_facebook_embed"`
	VideoAuthor       string                      `gorm:"column:video_author;type:varchar(120)" json:"video_author"`
	VideoTagIDs       datatypes.JSONSlice[string] `gorm:"column:video_tag_ids" json:"video_tag_ids"`
	VideoIsFeatured   bool                        `gorm:"column:video_is_featured;default:false" json:"video_is_featured"`
	VideoStatus       string                      `gorm:"column:video_status;type:varchar(20);default:draft" json:"video_status"`
	VideoDurationSec  int                         `gorm:"column:video_duration_sec;default:0" json:"video_duration_sec"`
	VideoFileSize     int64                       `gorm:"column:video_file_size;default:0" json:"video_file_size"`
	VideoCreatedAt    time.Time                   `gorm:"column:video_created_at;autoCreateTime" json:"video_created_at"`
	VideoUpdatedAt    time.Time                   `gorm:"column:video_updated_at;autoUpdateTime" json:"video_updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (VideoModel) PrimaryColumn() string {
	return "video_id"
}

func (m *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if m.VideoID == "" {
		m.VideoID = uuid.NewString()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	photoModel "yayasanku_backend/internals/features/contents/photos/model"
	videoModel "yayasanku_backend/internals/features/contents/videos/model"
	sectionModel "yayasanku_backend/internals/features/home/sections/model"
	tagModel "yayasanku_backend/internals/features/tags/model"
)

// ActivityModel hangs off a homepage section; deleting the section removes
// its activities, the media references only null out.
type ActivityModel struct {
	ActivityID               string     `gorm:"column:activity_id;primaryKey;type:uuid" json:"activity_id"`
	ActivityTitle            string     `gorm:"column:activity_title;type:varchar(255);not null" json:"activity_title"`
	ActivitySubtitle         string     `gorm:"column:activity_subtitle;type:text" json:"activity_subtitle"`
	ActivityDescription      string     `gorm:"column:activity_description;type:text" json:"activity_description"`
	ActivitySectionID        *string    `gorm:"column:activity_section_id;type:uuid" json:"activity_section_id"`
	ActivityVideoID          *string    `gorm:"column:activity_video_id;type:uuid" json:"activity_video_id"`
	ActivityPhotoID          *string    `gorm:"column:activity_photo_id;type:uuid" json:"activity_photo_id"`
	ActivityTagID            *string    `gorm:"column:activity_tag_id;type:uuid" json:"activity_tag_id"`
	ActivityVideoDescription string     `gorm:"column:activity_video_description;type:text" json:"activity_video_description"`
	ActivityPhotoDescription string     `gorm:"column:activity_photo_description;type:text" json:"activity_photo_description"`
	ActivityOrder            int        `gorm:"column:activity_order;default:0" json:"activity_order"`
	ActivityIsActive         bool       `gorm:"column:activity_is_active;default:true" json:"activity_is_active"`
	ActivityCreatedAt        time.Time  `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt        time.Time  `gorm:"column:activity_updated_at;autoUpdateTime" json:"activity_updated_at"`

	Section *sectionModel.SectionModel `gorm:"foreignKey:ActivitySectionID;references:SectionID;constraint:OnDelete:CASCADE" json:"section,omitempty"`
	Video   *videoModel.VideoModel     `gorm:"foreignKey:ActivityVideoID;references:VideoID;constraint:OnDelete:SET NULL" json:"video,omitempty"`
	Photo   *photoModel.PhotoModel     `gorm:"foreignKey:ActivityPhotoID;references:PhotoID;constraint:OnDelete:SET NULL" json:"photo,omitempty"`
	Tag     *tagModel.TagModel         `gorm:"foreignKey:ActivityTagID;references:TagID;constraint:OnDelete:SET NULL" json:"tag,omitempty"`
}

func (ActivityModel) TableName() string {
	return "activities"
}

func (ActivityModel) PrimaryColumn() string {
	return "activity_id"
}

func (m *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityID == "" {
		m.ActivityID = uuid.NewString()
	}
	return nil
}

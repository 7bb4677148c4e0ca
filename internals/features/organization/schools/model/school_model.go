package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	videoModel "yayasanku_backend/internals/features/contents/videos/model"
	coordModel "yayasanku_backend/internals/features/organization/coordinates/model"
	tagModel "yayasanku_backend/internals/features/tags/model"
)

const (
	SchoolTypePrimary      = "primary"
	SchoolTypeSecondary    = "secondary"
	SchoolTypeTechnical    = "technical"
	SchoolTypeProfessional = "professional"
	SchoolTypeOther        = "other"
)

type SchoolModel struct {
	SchoolID            string    `gorm:"column:school_id;primaryKey;type:uuid" json:"school_id"`
	SchoolName          string    `gorm:"column:school_name;type:varchar(255);not null" json:"school_name"`
	SchoolDescription   string    `gorm:"column:school_description;type:text" json:"school_description"`
	SchoolType          string    `gorm:"column:school_type;type:varchar(20);default:other" json:"school_type"`
	SchoolImageURL      string    `gorm:"column:school_image_url;type:text" json:"school_image_url"`
	SchoolSubtitle      string    `gorm:"column:school_subtitle;type:text" json:"school_subtitle"`
	SchoolTagName       string    `gorm:"column:school_tag_name;type:varchar(120)" json:"school_tag_name"`
	SchoolCoordinatesID *string   `gorm:"column:school_coordinates_id;type:uuid" json:"school_coordinates_id"`
	SchoolTagID         *string   `gorm:"column:school_tag_id;type:uuid" json:"school_tag_id"`
	SchoolVideoID       *string   `gorm:"column:school_video_id;type:uuid" json:"school_video_id"`
	SchoolIsActive      bool      `gorm:"column:school_is_active;default:true" json:"school_is_active"`
	SchoolOrder         int       `gorm:"column:school_order;default:0" json:"school_order"`
	SchoolCreatedAt     time.Time `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt     time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`

	Coordinates *coordModel.CoordinatesModel `gorm:"foreignKey:SchoolCoordinatesID;references:CoordinatesID;constraint:OnDelete:SET NULL" json:"coordinates,omitempty"`
	Tag         *tagModel.TagModel           `gorm:"foreignKey:SchoolTagID;references:TagID;constraint:OnDelete:SET NULL" json:"tag,omitempty"`
	Video       *videoModel.VideoModel       `gorm:"foreignKey:SchoolVideoID;references:VideoID;constraint:OnDelete:SET NULL" json:"video,omitempty"`
}

func (SchoolModel) TableName() string {
	return "schools"
}

func (SchoolModel) PrimaryColumn() string {
	return "school_id"
}

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == "" {
		m.SchoolID = uuid.NewString()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	videoModel "yayasanku_backend/internals/features/contents/videos/model"
	heroModel "yayasanku_backend/internals/features/home/heroes/model"
	directorModel "yayasanku_backend/internals/features/organization/directors/model"
	tagModel "yayasanku_backend/internals/features/tags/model"
)

type CentreModel struct {
	CentreID          string    `gorm:"column:centre_id;primaryKey;type:uuid" json:"centre_id"`
	CentreName        string    `gorm:"column:centre_name;type:varchar(255);not null" json:"centre_name"`
	CentreDescription string    `gorm:"column:centre_description;type:text" json:"centre_description"`
	CentreAddress     string    `gorm:"column:centre_address;type:text" json:"centre_address"`
	CentrePhone       string    `gorm:"column:centre_phone;type:varchar(40)" json:"centre_phone"`
	CentreEmail       string    `gorm:"column:centre_email;type:varchar(255)" json:"centre_email"`
	CentreHeroID      *string   `gorm:"column:centre_hero_id;type:uuid" json:"centre_hero_id"`
	CentreVideoID     *string   `gorm:"column:centre_video_id;type:uuid" json:"centre_video_id"`
	CentreDirectorID  *string   `gorm:"column:centre_director_id;type:uuid" json:"centre_director_id"`
	CentreTagID       *string   `gorm:"column:centre_tag_id;type:uuid" json:"centre_tag_id"`
	CentreImageURL    string    `gorm:"column:centre_image_url;type:text" json:"centre_image_url"`
	CentreOrder       int       `gorm:"column:centre_order;default:0" json:"centre_order"`
	CentreIsActive    bool      `gorm:"column:centre_is_active;default:true" json:"centre_is_active"`
	CentreCreatedAt   time.Time `gorm:"column:centre_created_at;autoCreateTime" json:"centre_created_at"`
	CentreUpdatedAt   time.Time `gorm:"column:centre_updated_at;autoUpdateTime" json:"centre_updated_at"`

	Hero      *heroModel.HeroModel          `gorm:"foreignKey:CentreHeroID;references:HeroID;constraint:OnDelete:SET NULL" json:"hero,omitempty"`
	Video     *videoModel.VideoModel        `gorm:"foreignKey:CentreVideoID;references:VideoID;constraint:OnDelete:SET NULL" json:"video,omitempty"`
	Lead      *directorModel.DirectorModel  `gorm:"foreignKey:CentreDirectorID;references:DirectorID;constraint:OnDelete:SET NULL" json:"lead,omitempty"`
	Tag       *tagModel.TagModel            `gorm:"foreignKey:CentreTagID;references:TagID;constraint:OnDelete:SET NULL" json:"tag,omitempty"`
	Directors []directorModel.DirectorModel `gorm:"foreignKey:DirectorCentreID;references:CentreID;constraint:OnDelete:SET NULL" json:"directors"`
}

func (CentreModel) TableName() string {
	return "centres"
}

func (CentreModel) PrimaryColumn() string {
	return "centre_id"
}

func (m *CentreModel) BeforeCreate(tx *gorm.DB) error {
	if m.CentreID == "" {
		m.CentreID = uuid.NewString()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectorModel covers both leadership and general staff; the is_director
// flag separates the two on the public pages.
type DirectorModel struct {
	DirectorID             string    `gorm:"column:director_id;primaryKey;type:uuid" json:"director_id"`
	DirectorName           string    `gorm:"column:director_name;type:varchar(255);not null" json:"director_name"`
	DirectorImageURL       string    `gorm:"column:director_image_url;type:text" json:"director_image_url"`
	DirectorJobTitle       string    `gorm:"column:director_job_title;type:varchar(255)" json:"director_job_title"`
	DirectorResponsibility string    `gorm:"column:director_responsibility;type:text" json:"director_responsibility"`
	DirectorOrder          int       `gorm:"column:director_order;default:0" json:"director_order"`
	DirectorCentreID       *string   `gorm:"column:director_centre_id;type:uuid" json:"director_centre_id"`
	DirectorIsDirector     bool      `gorm:"column:director_is_director;default:false" json:"director_is_director"`
	DirectorIsActive       bool      `gorm:"column:director_is_active;default:true" json:"director_is_active"`
	DirectorCreatedAt      time.Time `gorm:"column:director_created_at;autoCreateTime" json:"director_created_at"`
	DirectorUpdatedAt      time.Time `gorm:"column:director_updated_at;autoUpdateTime" json:"director_updated_at"`
}

func (DirectorModel) TableName() string {
	return "directors"
}

func (DirectorModel) PrimaryColumn() string {
	return "director_id"
}

func (m *DirectorModel) BeforeCreate(tx *gorm.DB) error {
	if m.DirectorID == "" {
		m.DirectorID = uuid.NewString()
	}
	return nil
}

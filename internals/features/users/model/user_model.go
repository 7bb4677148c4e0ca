package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID           string    `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	UserEmail        string    `gorm:"column:user_email;type:varchar(255);uniqueIndex;not null" json:"user_email"`
	UserPasswordHash string    `gorm:"column:user_password_hash;type:varchar(255);not null" json:"-"`
	UserCreatedAt    time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt    time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (UserModel) PrimaryColumn() string {
	return "user_id"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == "" {
		m.UserID = uuid.NewString()
	}
	return nil
}

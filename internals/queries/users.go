package queries

import (
	"strings"

	"gorm.io/gorm"

	"yayasanku_backend/internals/features/users/model"
)

// GetUserByEmail does the login lookup. Emails are stored lowercased.
func GetUserByEmail(db *gorm.DB, email string) (*model.UserModel, error) {
	var m model.UserModel
	err := db.Where("user_email = ?", strings.ToLower(strings.TrimSpace(email))).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/users/model"
	helper "yayasanku_backend/internals/helpers"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserRow never carries the password hash.
func UserRow(m model.UserModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":         m.UserID,
		"email":      m.UserEmail,
		"created_at": m.UserCreatedAt,
		"updated_at": m.UserUpdatedAt,
	})
}

package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/tags/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreateTagRequest struct {
	TagName  string `json:"tag_name" validate:"required,min=2"`
	TagColor string `json:"tag_color" validate:"omitempty,hexcolor"`
}

type UpdateTagRequest = CreateTagRequest

// TagRow maps the store shape to the dual-keyed API row.
func TagRow(m model.TagModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":         m.TagID,
		"name":       m.TagName,
		"color":      m.TagColor,
		"created_at": m.TagCreatedAt,
		"updated_at": m.TagUpdatedAt,
	})
}

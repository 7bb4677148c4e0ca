package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/organization/coordinates/model"
	tagDTO "yayasanku_backend/internals/features/tags/dto"
	helper "yayasanku_backend/internals/helpers"
)

type CreateCoordinatesRequest struct {
	CoordinatesPhone    string  `json:"coordinates_phone"`
	CoordinatesEmail    string  `json:"coordinates_email" validate:"omitempty,email"`
	CoordinatesAddress  string  `json:"coordinates_address"`
	CoordinatesTagID    *string `json:"coordinates_tag_id" validate:"omitempty,uuid"`
	CoordinatesMapURL   string  `json:"coordinates_map_url" validate:"omitempty,url"`
	CoordinatesOrder    int     `json:"coordinates_order"`
	CoordinatesIsActive *bool   `json:"coordinates_is_active"`
}

type UpdateCoordinatesRequest = CreateCoordinatesRequest

// CoordinatesRow maps the store shape to the dual-keyed API row.
func CoordinatesRow(m model.CoordinatesModel) fiber.Map {
	var tag any
	if m.Tag != nil {
		tag = tagDTO.TagRow(*m.Tag)
	}
	return helper.DualMap(fiber.Map{
		"id":         m.CoordinatesID,
		"phone":      m.CoordinatesPhone,
		"email":      m.CoordinatesEmail,
		"address":    m.CoordinatesAddress,
		"tag_id":     m.CoordinatesTagID,
		"tag":        tag,
		"map_url":    m.CoordinatesMapURL,
		"sort_order": m.CoordinatesOrder,
		"active":     m.CoordinatesIsActive,
		"created_at": m.CoordinatesCreatedAt,
		"updated_at": m.CoordinatesUpdatedAt,
	})
}

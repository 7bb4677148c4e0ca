package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/home/impacts/model"
	tagDTO "yayasanku_backend/internals/features/tags/dto"
	helper "yayasanku_backend/internals/helpers"
)

type CreateImpactRequest struct {
	ImpactValue    int64    `json:"impact_value" validate:"min=0"`
	ImpactTitle    string   `json:"impact_title" validate:"required,min=2"`
	ImpactSubtitle string   `json:"impact_subtitle"`
	ImpactTagID    *string  `json:"impact_tag_id" validate:"omitempty,uuid"`
	ImpactTagIDs   []string `json:"impact_tag_ids" validate:"omitempty,dive,uuid"`
	ImpactIsActive *bool    `json:"impact_is_active"`
	ImpactOrder    int      `json:"impact_order"`
}

type UpdateImpactRequest = CreateImpactRequest

// ImpactRow maps the store shape to the dual-keyed API row. The legacy
// single-tag reference rides along as a nested tag object (or null).
func ImpactRow(m model.ImpactModel) fiber.Map {
	var tag any
	if m.Tag != nil {
		tag = tagDTO.TagRow(*m.Tag)
	}
	return helper.DualMap(fiber.Map{
		"id":         m.ImpactID,
		"value":      m.ImpactValue,
		"title":      m.ImpactTitle,
		"subtitle":   m.ImpactSubtitle,
		"tag_id":     m.ImpactTagID,
		"tag_ids":    []string(m.ImpactTagIDs),
		"tag":        tag,
		"active":     m.ImpactIsActive,
		"sort_order": m.ImpactOrder,
		"created_at": m.ImpactCreatedAt,
		"updated_at": m.ImpactUpdatedAt,
	})
}

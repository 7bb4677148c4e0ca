package dto

import (
	"github.com/gofiber/fiber/v2"

	heroDTO "yayasanku_backend/internals/features/home/heroes/dto"
	"yayasanku_backend/internals/features/home/sections/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreateSectionRequest struct {
	SectionTitle       string   `json:"section_title" validate:"required,min=3"`
	SectionSubtitle    string   `json:"section_subtitle"`
	SectionDescription string   `json:"section_description"`
	SectionImageURL    string   `json:"section_image_url" validate:"omitempty,url"`
	SectionHeroID      *string  `json:"section_hero_id" validate:"omitempty,uuid"`
	SectionTagName     string   `json:"section_tag_name"`
	SectionTagIDs      []string `json:"section_tag_ids" validate:"omitempty,dive,uuid"`
	SectionIsActive    *bool    `json:"section_is_active"`
	SectionOrder       int      `json:"section_order"`
}

type UpdateSectionRequest = CreateSectionRequest

// SectionRow maps the store shape to the dual-keyed API row.
func SectionRow(m model.SectionModel) fiber.Map {
	var hero any
	if m.Hero != nil {
		hero = heroDTO.HeroRow(*m.Hero)
	}
	return helper.DualMap(fiber.Map{
		"id":          m.SectionID,
		"title":       m.SectionTitle,
		"subtitle":    m.SectionSubtitle,
		"description": m.SectionDescription,
		"image_url":   m.SectionImageURL,
		"hero_id":     m.SectionHeroID,
		"hero":        hero,
		"tag_name":    m.SectionTagName,
		"tag_ids":     []string(m.SectionTagIDs),
		"active":      m.SectionIsActive,
		"sort_order":  m.SectionOrder,
		"created_at":  m.SectionCreatedAt,
		"updated_at":  m.SectionUpdatedAt,
	})
}

package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/home/heroes/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreateHeroRequest struct {
	HeroTitle    string   `json:"hero_title" validate:"required,min=3"`
	HeroSubtitle string   `json:"hero_subtitle"`
	HeroImageURL string   `json:"hero_image_url" validate:"required,url"`
	HeroTagIDs   []string `json:"hero_tag_ids" validate:"omitempty,dive,uuid"`
	HeroOrder    int      `json:"hero_order"`
	HeroIsActive *bool    `json:"hero_is_active"`
}

type UpdateHeroRequest = CreateHeroRequest

// HeroRow maps the store shape to the dual-keyed API row.
func HeroRow(m model.HeroModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":         m.HeroID,
		"title":      m.HeroTitle,
		"subtitle":   m.HeroSubtitle,
		"image_url":  m.HeroImageURL,
		"tag_ids":    []string(m.HeroTagIDs),
		"sort_order": m.HeroOrder,
		"active":     m.HeroIsActive,
		"created_at": m.HeroCreatedAt,
		"updated_at": m.HeroUpdatedAt,
	})
}

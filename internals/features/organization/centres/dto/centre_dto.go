package dto

import (
	"github.com/gofiber/fiber/v2"

	videoDTO "yayasanku_backend/internals/features/contents/videos/dto"
	heroDTO "yayasanku_backend/internals/features/home/heroes/dto"
	"yayasanku_backend/internals/features/organization/centres/model"
	directorDTO "yayasanku_backend/internals/features/organization/directors/dto"
	tagDTO "yayasanku_backend/internals/features/tags/dto"
	helper "yayasanku_backend/internals/helpers"
)

type CreateCentreRequest struct {
	CentreName        string  `json:"centre_name" validate:"required,min=3"`
	CentreDescription string  `json:"centre_description"`
	CentreAddress     string  `json:"centre_address"`
	CentrePhone       string  `json:"centre_phone"`
	CentreEmail       string  `json:"centre_email" validate:"omitempty,email"`
	CentreHeroID      *string `json:"centre_hero_id" validate:"omitempty,uuid"`
	CentreVideoID     *string `json:"centre_video_id" validate:"omitempty,uuid"`
	CentreDirectorID  *string `json:"centre_director_id" validate:"omitempty,uuid"`
	CentreTagID       *string `json:"centre_tag_id" validate:"omitempty,uuid"`
	CentreImageURL    string  `json:"centre_image_url" validate:"omitempty,url"`
	CentreOrder       int     `json:"centre_order"`
	CentreIsActive    *bool   `json:"centre_is_active"`
}

type UpdateCentreRequest = CreateCentreRequest

// CentreRow maps the store shape to the dual-keyed API row. The directors
// relation always comes out as an array (possibly empty); the object
// relations come out as explicit nulls when unset.
func CentreRow(m model.CentreModel) fiber.Map {
	var hero, video, lead, tag any
	if m.Hero != nil {
		hero = heroDTO.HeroRow(*m.Hero)
	}
	if m.Video != nil {
		video = videoDTO.VideoRow(*m.Video)
	}
	if m.Lead != nil {
		lead = directorDTO.DirectorRow(*m.Lead)
	}
	if m.Tag != nil {
		tag = tagDTO.TagRow(*m.Tag)
	}
	directors := make([]fiber.Map, 0, len(m.Directors))
	for _, d := range m.Directors {
		directors = append(directors, directorDTO.DirectorRow(d))
	}
	return helper.DualMap(fiber.Map{
		"id":          m.CentreID,
		"name":        m.CentreName,
		"description": m.CentreDescription,
		"address":     m.CentreAddress,
		"phone":       m.CentrePhone,
		"email":       m.CentreEmail,
		"hero_id":     m.CentreHeroID,
		"video_id":    m.CentreVideoID,
		"director_id": m.CentreDirectorID,
		"tag_id":      m.CentreTagID,
		"hero":        hero,
		"video":       video,
		"lead":        lead,
		"tag":         tag,
		"directors":   directors,
		"image_url":   m.CentreImageURL,
		"sort_order":  m.CentreOrder,
		"active":      m.CentreIsActive,
		"created_at":  m.CentreCreatedAt,
		"updated_at":  m.CentreUpdatedAt,
	})
}

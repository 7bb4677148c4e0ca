package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/organization/directors/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreateDirectorRequest struct {
	DirectorName           string  `json:"director_name" validate:"required,min=2"`
	DirectorImageURL       string  `json:"director_image_url" validate:"omitempty,url"`
	DirectorJobTitle       string  `json:"director_job_title"`
	DirectorResponsibility string  `json:"director_responsibility"`
	DirectorOrder          int     `json:"director_order"`
	DirectorCentreID       *string `json:"director_centre_id" validate:"omitempty,uuid"`
	DirectorIsDirector     bool    `json:"director_is_director"`
	DirectorIsActive       *bool   `json:"director_is_active"`
}

type UpdateDirectorRequest = CreateDirectorRequest

// DirectorRow maps the store shape to the dual-keyed API row.
func DirectorRow(m model.DirectorModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":             m.DirectorID,
		"name":           m.DirectorName,
		"image_url":      m.DirectorImageURL,
		"job_title":      m.DirectorJobTitle,
		"responsibility": m.DirectorResponsibility,
		"sort_order":     m.DirectorOrder,
		"centre_id":      m.DirectorCentreID,
		"is_director":    m.DirectorIsDirector,
		"active":         m.DirectorIsActive,
		"created_at":     m.DirectorCreatedAt,
		"updated_at":     m.DirectorUpdatedAt,
	})
}

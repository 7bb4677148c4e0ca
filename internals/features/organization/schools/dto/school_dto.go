package dto

import (
	"github.com/gofiber/fiber/v2"

	videoDTO "yayasanku_backend/internals/features/contents/videos/dto"
	coordDTO "yayasanku_backend/internals/features/organization/coordinates/dto"
	"yayasanku_backend/internals/features/organization/schools/model"
	tagDTO "yayasanku_backend/internals/features/tags/dto"
	helper "yayasanku_backend/internals/helpers"
)

type CreateSchoolRequest struct {
	SchoolName          string  `json:"school_name" validate:"required,min=3"`
	SchoolDescription   string  `json:"school_description"`
	SchoolType          string  `json:"school_type" validate:"omitempty,oneof=primary secondary technical professional other"`
	SchoolImageURL      string  `json:"school_image_url" validate:"omitempty,url"`
	SchoolSubtitle      string  `json:"school_subtitle"`
	SchoolTagName       string  `json:"school_tag_name"`
	SchoolCoordinatesID *string `json:"school_coordinates_id" validate:"omitempty,uuid"`
	SchoolTagID         *string `json:"school_tag_id" validate:"omitempty,uuid"`
	SchoolVideoID       *string `json:"school_video_id" validate:"omitempty,uuid"`
	SchoolIsActive      *bool   `json:"school_is_active"`
	SchoolOrder         int     `json:"school_order"`
}

type UpdateSchoolRequest = CreateSchoolRequest

// SchoolRow maps the store shape to the dual-keyed API row.
func SchoolRow(m model.SchoolModel) fiber.Map {
	var coordinates, tag, video any
	if m.Coordinates != nil {
		coordinates = coordDTO.CoordinatesRow(*m.Coordinates)
	}
	if m.Tag != nil {
		tag = tagDTO.TagRow(*m.Tag)
	}
	if m.Video != nil {
		video = videoDTO.VideoRow(*m.Video)
	}
	return helper.DualMap(fiber.Map{
		"id":             m.SchoolID,
		"name":           m.SchoolName,
		"description":    m.SchoolDescription,
		"type":           m.SchoolType,
		"image_url":      m.SchoolImageURL,
		"subtitle":       m.SchoolSubtitle,
		"tag_name":       m.SchoolTagName,
		"coordinates_id": m.SchoolCoordinatesID,
		"tag_id":         m.SchoolTagID,
		"video_id":       m.SchoolVideoID,
		"coordinates":    coordinates,
		"tag":            tag,
		"video":          video,
		"active":         m.SchoolIsActive,
		"sort_order":     m.SchoolOrder,
		"created_at":     m.SchoolCreatedAt,
		"updated_at":     m.SchoolUpdatedAt,
	})
}

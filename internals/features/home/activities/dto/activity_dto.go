package dto

import (
	"github.com/gofiber/fiber/v2"

	photoDTO "yayasanku_backend/internals/features/contents/photos/dto"
	videoDTO "yayasanku_backend/internals/features/contents/videos/dto"
	"yayasanku_backend/internals/features/home/activities/model"
	sectionDTO "yayasanku_backend/internals/features/home/sections/dto"
	tagDTO "yayasanku_backend/internals/features/tags/dto"
	helper "yayasanku_backend/internals/helpers"
)

type CreateActivityRequest struct {
	ActivityTitle            string  `json:"activity_title" validate:"required,min=3"`
	ActivitySubtitle         string  `json:"activity_subtitle"`
	ActivityDescription      string  `json:"activity_description"`
	ActivitySectionID        *string `json:"activity_section_id" validate:"omitempty,uuid"`
	ActivityVideoID          *string `json:"activity_video_id" validate:"omitempty,uuid"`
	ActivityPhotoID          *string `json:"activity_photo_id" validate:"omitempty,uuid"`
	ActivityTagID            *string `json:"activity_tag_id" validate:"omitempty,uuid"`
	ActivityVideoDescription string  `json:"activity_video_description"`
	ActivityPhotoDescription string  `json:"activity_photo_description"`
	ActivityOrder            int     `json:"activity_order"`
	ActivityIsActive         *bool   `json:"activity_is_active"`
}

type UpdateActivityRequest = CreateActivityRequest

// ActivityRow maps the store shape to the dual-keyed API row. Relations that
// matched no row come out as explicit nulls, never omitted.
func ActivityRow(m model.ActivityModel) fiber.Map {
	var section, video, photo, tag any
	if m.Section != nil {
		section = sectionDTO.SectionRow(*m.Section)
	}
	if m.Video != nil {
		video = videoDTO.VideoRow(*m.Video)
	}
	if m.Photo != nil {
		photo = photoDTO.PhotoRow(*m.Photo)
	}
	if m.Tag != nil {
		tag = tagDTO.TagRow(*m.Tag)
	}
	return helper.DualMap(fiber.Map{
		"id":                m.ActivityID,
		"title":             m.ActivityTitle,
		"subtitle":          m.ActivitySubtitle,
		"description":       m.ActivityDescription,
		"section_id":        m.ActivitySectionID,
		"video_id":          m.ActivityVideoID,
		"photo_id":          m.ActivityPhotoID,
		"tag_id":            m.ActivityTagID,
		"section":           section,
		"video":             video,
		"photo":             photo,
		"tag":               tag,
		"video_description": m.ActivityVideoDescription,
		"photo_description": m.ActivityPhotoDescription,
		"sort_order":        m.ActivityOrder,
		"active":            m.ActivityIsActive,
		"created_at":        m.ActivityCreatedAt,
		"updated_at":        m.ActivityUpdatedAt,
	})
}

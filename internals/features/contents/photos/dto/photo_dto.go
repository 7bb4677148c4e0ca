package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/contents/photos/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreatePhotoRequest struct {
	PhotoTitle        string   `json:"photo_title" validate:"required,min=3"`
	PhotoDescription  *string  `json:"photo_description"`
	PhotoImageURL     string   `json:"photo_image_url" validate:"required,url"`
	PhotoThumbnailURL *string  `json:"photo_thumbnail_url"`
	PhotoCategory     string   `json:"photo_category"`
	PhotoIsFeatured   bool     `json:"photo_is_featured"`
	PhotoStatus       string   `json:"photo_status" validate:"omitempty,oneof=draft published archived"`
	PhotoGalleryURLs  []string `json:"photo_gallery_urls"`
	PhotoTagIDs       []string `json:"photo_tag_ids" validate:"omitempty,dive,uuid"`
}

type UpdatePhotoRequest = CreatePhotoRequest

// PhotoRow maps the store shape to the dual-keyed API row.
func PhotoRow(m model.PhotoModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":            m.PhotoID,
		"title":         m.PhotoTitle,
		"description":   m.PhotoDescription,
		"image_url":     m.PhotoImageURL,
		"thumbnail_url": m.PhotoThumbnailURL,
		"category":      m.PhotoCategory,
		"featured":      m.PhotoIsFeatured,
		"status":        m.PhotoStatus,
		"gallery_urls":  []string(m.PhotoGalleryURLs),
		"tag_ids":       []string(m.PhotoTagIDs),
		"published_at":  m.PhotoPublishedAt,
		"created_at":    m.PhotoCreatedAt,
		"updated_at":    m.PhotoUpdatedAt,
	})
}

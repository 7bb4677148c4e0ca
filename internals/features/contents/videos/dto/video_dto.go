package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/contents/videos/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreateVideoRequest struct {
	VideoTitle         string   `json:"video_title" validate:"required,min=3"`
	VideoDescription   string   `json:"video_description"`
	VideoExcerpt       string   `json:"video_excerpt"`
	VideoFileURL       *string  `json:"video_file_url"`
	VideoThumbnailURL  *string  `json:"video_thumbnail_url"`
	VideoSource        string   `json:"video_source" validate:"omitempty,oneof=upload youtube facebook"`
	VideoYoutubeID     *string  `json:"video_youtube_id"`
	VideoFacebookEmbed *string  `json:"video_facebook_embed"`
	VideoAuthor        string   `json:"video_author"`
	VideoTagIDs        []string `json:"video_tag_ids" validate:"omitempty,dive,uuid"`
	VideoIsFeatured    bool     `json:"video_is_featured"`
	VideoStatus        string   `json:"video_status" validate:"omitempty,oneof=draft published archived"`
	VideoDurationSec   int      `json:"video_duration_sec" validate:"omitempty,min=0"`
	VideoFileSize      int64    `json:"video_file_size" validate:"omitempty,min=0"`
}

type UpdateVideoRequest = CreateVideoRequest

// VideoRow maps the store shape to the dual-keyed API row.
func VideoRow(m model.VideoModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":             m.VideoID,
		"title":          m.VideoTitle,
		"description":    m.VideoDescription,
		"excerpt":        m.VideoExcerpt,
		"file_url":       m.VideoFileURL,
		"thumbnail_url":  m.VideoThumbnailURL,
		"source":         m.VideoSource,
		"youtube_id":     m.VideoYoutubeID,
		"facebook_embed": m.VideoFacebookEmbed,
		"author":         m.VideoAuthor,
		"tag_ids":        []string(m.VideoTagIDs),
		"featured":       m.VideoIsFeatured,
		"status":         m.VideoStatus,
		"duration_sec":   m.VideoDurationSec,
		"file_size":      m.VideoFileSize,
		"created_at":     m.VideoCreatedAt,
		"updated_at":     m.VideoUpdatedAt,
	})
}

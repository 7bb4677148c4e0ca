package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/contents/articles/model"
	helper "yayasanku_backend/internals/helpers"
)

// ============================
// Create & Update Request DTO
// ============================

type CreateArticleRequest struct {
	ArticleTitle       string   `json:"article_title" validate:"required,min=3"`
	ArticleContent     string   `json:"article_content" validate:"required"`
	ArticleExcerpt     string   `json:"article_excerpt"`
	ArticleImageURLs   []string `json:"article_image_urls"`
	ArticleAuthor      string   `json:"article_author"`
	ArticleTagIDs      []string `json:"article_tag_ids" validate:"omitempty,dive,uuid"`
	ArticleIsFeatured  bool     `json:"article_is_featured"`
	ArticleStatus      string   `json:"article_status" validate:"omitempty,oneof=draft published archived"`
}

type UpdateArticleRequest struct {
	ArticleTitle      string   `json:"article_title" validate:"required,min=3"`
	ArticleContent    string   `json:"article_content" validate:"required"`
	ArticleExcerpt    string   `json:"article_excerpt"`
	ArticleImageURLs  []string `json:"article_image_urls"`
	ArticleAuthor     string   `json:"article_author"`
	ArticleTagIDs     []string `json:"article_tag_ids" validate:"omitempty,dive,uuid"`
	ArticleIsFeatured bool     `json:"article_is_featured"`
	ArticleStatus     string   `json:"article_status" validate:"omitempty,oneof=draft published archived"`
}

// ============================
// Row shaper (public shape)
// ============================

// ArticleRow maps the store shape to the dual-keyed API row.
func ArticleRow(m model.ArticleModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":           m.ArticleID,
		"title":        m.ArticleTitle,
		"content":      m.ArticleContent,
		"excerpt":      m.ArticleExcerpt,
		"image_urls":   []string(m.ArticleImageURLs),
		"author":       m.ArticleAuthor,
		"tag_ids":      []string(m.ArticleTagIDs),
		"featured":     m.ArticleIsFeatured,
		"status":       m.ArticleStatus,
		"published_at": m.ArticlePublishedAt,
		"created_at":   m.ArticleCreatedAt,
		"updated_at":   m.ArticleUpdatedAt,
	})
}

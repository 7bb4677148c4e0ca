package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/contents/library/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreateLibraryItemRequest struct {
	LibraryItemTitle       string   `json:"library_item_title" validate:"required,min=3"`
	LibraryItemDescription string   `json:"library_item_description"`
	LibraryItemFileURL     string   `json:"library_item_file_url" validate:"required,url"`
	LibraryItemFileName    string   `json:"library_item_file_name"`
	LibraryItemFileSize    int64    `json:"library_item_file_size" validate:"omitempty,min=0"`
	LibraryItemFileType    string   `json:"library_item_file_type"`
	LibraryItemCategory    string   `json:"library_item_category"`
	LibraryItemIsFeatured  bool     `json:"library_item_is_featured"`
	LibraryItemStatus      string   `json:"library_item_status" validate:"omitempty,oneof=draft published archived"`
	LibraryItemAuthor      string   `json:"library_item_author"`
	LibraryItemTagIDs      []string `json:"library_item_tag_ids" validate:"omitempty,dive,uuid"`
}

type UpdateLibraryItemRequest = CreateLibraryItemRequest

// LibraryItemRow maps the store shape to the dual-keyed API row.
func LibraryItemRow(m model.LibraryItemModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":          m.LibraryItemID,
		"title":       m.LibraryItemTitle,
		"description": m.LibraryItemDescription,
		"file_url":    m.LibraryItemFileURL,
		"file_name":   m.LibraryItemFileName,
		"file_size":   m.LibraryItemFileSize,
		"file_type":   m.LibraryItemFileType,
		"category":    m.LibraryItemCategory,
		"downloads":   m.LibraryItemDownloads,
		"featured":    m.LibraryItemIsFeatured,
		"status":      m.LibraryItemStatus,
		"author":      m.LibraryItemAuthor,
		"tag_ids":     []string(m.LibraryItemTagIDs),
		"created_at":  m.LibraryItemCreatedAt,
		"updated_at":  m.LibraryItemUpdatedAt,
	})
}

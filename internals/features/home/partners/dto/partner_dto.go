package dto

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/features/home/partners/model"
	helper "yayasanku_backend/internals/helpers"
)

type CreatePartnerRequest struct {
	PartnerTitle        string   `json:"partner_title" validate:"required,min=2"`
	PartnerSubtitle     string   `json:"partner_subtitle"`
	PartnerDescription  string   `json:"partner_description"`
	PartnerImageURL     string   `json:"partner_image_url" validate:"omitempty,url"`
	PartnerTagIDs       []string `json:"partner_tag_ids" validate:"omitempty,dive,uuid"`
	PartnerOrder        int      `json:"partner_order"`
	PartnerIsActive     *bool    `json:"partner_is_active"`
	PartnerWebsiteURL   string   `json:"partner_website_url" validate:"omitempty,url"`
	PartnerContactEmail string   `json:"partner_contact_email" validate:"omitempty,email"`
	PartnerContactPhone string   `json:"partner_contact_phone"`
}

type UpdatePartnerRequest = CreatePartnerRequest

// PartnerRow maps the store shape to the dual-keyed API row.
func PartnerRow(m model.PartnerModel) fiber.Map {
	return helper.DualMap(fiber.Map{
		"id":            m.PartnerID,
		"title":         m.PartnerTitle,
		"subtitle":      m.PartnerSubtitle,
		"description":   m.PartnerDescription,
		"image_url":     m.PartnerImageURL,
		"tag_ids":       []string(m.PartnerTagIDs),
		"sort_order":    m.PartnerOrder,
		"active":        m.PartnerIsActive,
		"website_url":   m.PartnerWebsiteURL,
		"contact_email": m.PartnerContactEmail,
		"contact_phone": m.PartnerContactPhone,
		"created_at":    m.PartnerCreatedAt,
		"updated_at":    m.PartnerUpdatedAt,
	})
}

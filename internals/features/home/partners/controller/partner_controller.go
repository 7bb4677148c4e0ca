package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/partners/dto"
	"yayasanku_backend/internals/features/home/partners/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validatePartner = validator.New()

type PartnerController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewPartnerController(db *gorm.DB, svc *ossHelper.OSSService) *PartnerController {
	return &PartnerController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Partner
// =============================
func (ctrl *PartnerController) CreatePartner(c *fiber.Ctx) error {
	var body dto.CreatePartnerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "image", "partner_image", "logo"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "partners")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.PartnerImageURL = url
	}
	if err := validatePartner.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	partner := model.PartnerModel{
		PartnerTitle:        body.PartnerTitle,
		PartnerSubtitle:     body.PartnerSubtitle,
		PartnerDescription:  body.PartnerDescription,
		PartnerImageURL:     body.PartnerImageURL,
		PartnerTagIDs:       body.PartnerTagIDs,
		PartnerOrder:        body.PartnerOrder,
		PartnerWebsiteURL:   body.PartnerWebsiteURL,
		PartnerContactEmail: body.PartnerContactEmail,
		PartnerContactPhone: body.PartnerContactPhone,
		PartnerIsActive:     true,
	}
	if body.PartnerIsActive != nil {
		partner.PartnerIsActive = *body.PartnerIsActive
	}
	if err := repository.Create(ctrl.DB, &partner); err != nil {
		return helper.JsonStoreError(c, err, "Partner not found")
	}
	return helper.JsonCreated(c, "Partner created", dto.PartnerRow(partner))
}

// =============================
// 🔄 Update Partner
// =============================
func (ctrl *PartnerController) UpdatePartner(c *fiber.Ctx) error {
	var body dto.UpdatePartnerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	partner, err := repository.FindByID[model.PartnerModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Partner not found")
	}

	if fh := ossHelper.FormFile(c, "image", "partner_image", "logo"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "partners")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.PartnerImageURL = url
	}
	if err := validatePartner.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	partner.PartnerTitle = body.PartnerTitle
	partner.PartnerSubtitle = body.PartnerSubtitle
	partner.PartnerDescription = body.PartnerDescription
	partner.PartnerImageURL = body.PartnerImageURL
	partner.PartnerTagIDs = body.PartnerTagIDs
	partner.PartnerOrder = body.PartnerOrder
	partner.PartnerWebsiteURL = body.PartnerWebsiteURL
	partner.PartnerContactEmail = body.PartnerContactEmail
	partner.PartnerContactPhone = body.PartnerContactPhone
	if body.PartnerIsActive != nil {
		partner.PartnerIsActive = *body.PartnerIsActive
	}

	if err := repository.Save(ctrl.DB, partner); err != nil {
		return helper.JsonStoreError(c, err, "Partner not found")
	}
	return helper.JsonUpdated(c, "Partner updated", dto.PartnerRow(*partner))
}

// =============================
// 🗑️ Delete Partner
// =============================
func (ctrl *PartnerController) DeletePartner(c *fiber.Ctx) error {
	if err := repository.Delete[model.PartnerModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Partner not found")
	}
	return helper.JsonDeleted(c, "Partner deleted")
}

// =============================
// 📄 List Partners
// =============================
func (ctrl *PartnerController) GetPartners(c *fiber.Ctx) error {
	var tagIDs []string
	if raw := strings.TrimSpace(c.Query("tag_ids")); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				tagIDs = append(tagIDs, p)
			}
		}
	}

	rows, err := queries.GetPartners(ctrl.DB, queries.PartnerOptions{
		Active: helper.QueryBoolPtr(c, "active"),
		TagIDs: tagIDs,
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Partner not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

func (ctrl *PartnerController) GetPartnerByID(c *fiber.Ctx) error {
	row, err := queries.GetPartnerByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Partner not found")
	}
	return helper.JsonOK(c, "OK", row)
}

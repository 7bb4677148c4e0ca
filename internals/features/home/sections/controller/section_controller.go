package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/sections/dto"
	"yayasanku_backend/internals/features/home/sections/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateSection = validator.New()

type SectionController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewSectionController(db *gorm.DB, svc *ossHelper.OSSService) *SectionController {
	return &SectionController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Section
// =============================
func (ctrl *SectionController) CreateSection(c *fiber.Ctx) error {
	var body dto.CreateSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "image", "section_image"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "sections")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.SectionImageURL = url
	}
	if err := validateSection.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	section := model.SectionModel{
		SectionTitle:       body.SectionTitle,
		SectionSubtitle:    body.SectionSubtitle,
		SectionDescription: body.SectionDescription,
		SectionImageURL:    body.SectionImageURL,
		SectionHeroID:      body.SectionHeroID,
		SectionTagName:     body.SectionTagName,
		SectionTagIDs:      body.SectionTagIDs,
		SectionOrder:       body.SectionOrder,
		SectionIsActive:    true,
	}
	if body.SectionIsActive != nil {
		section.SectionIsActive = *body.SectionIsActive
	}
	if err := repository.Create(ctrl.DB, &section); err != nil {
		return helper.JsonStoreError(c, err, "Section not found")
	}
	return helper.JsonCreated(c, "Section created", dto.SectionRow(section))
}

// =============================
// 🔄 Update Section
// =============================
func (ctrl *SectionController) UpdateSection(c *fiber.Ctx) error {
	var body dto.UpdateSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	section, err := repository.FindByID[model.SectionModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Section not found")
	}

	if fh := ossHelper.FormFile(c, "image", "section_image"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "sections")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.SectionImageURL = url
	}
	if err := validateSection.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	section.SectionTitle = body.SectionTitle
	section.SectionSubtitle = body.SectionSubtitle
	section.SectionDescription = body.SectionDescription
	section.SectionImageURL = body.SectionImageURL
	section.SectionHeroID = body.SectionHeroID
	section.SectionTagName = body.SectionTagName
	section.SectionTagIDs = body.SectionTagIDs
	section.SectionOrder = body.SectionOrder
	if body.SectionIsActive != nil {
		section.SectionIsActive = *body.SectionIsActive
	}

	if err := repository.Save(ctrl.DB, section); err != nil {
		return helper.JsonStoreError(c, err, "Section not found")
	}
	return helper.JsonUpdated(c, "Section updated", dto.SectionRow(*section))
}

// =============================
// 🗑️ Delete Section
// =============================
func (ctrl *SectionController) DeleteSection(c *fiber.Ctx) error {
	if err := repository.Delete[model.SectionModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Section not found")
	}
	return helper.JsonDeleted(c, "Section deleted")
}

// =============================
// 📄 List Sections
// =============================
func (ctrl *SectionController) GetSections(c *fiber.Ctx) error {
	rows, err := queries.GetSections(ctrl.DB, queries.SectionOptions{
		Active: helper.QueryBoolPtr(c, "active"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Section not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

func (ctrl *SectionController) GetSectionByID(c *fiber.Ctx) error {
	row, err := queries.GetSectionByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Section not found")
	}
	return helper.JsonOK(c, "OK", row)
}

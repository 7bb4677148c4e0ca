package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/impacts/dto"
	"yayasanku_backend/internals/features/home/impacts/model"
	helper "yayasanku_backend/internals/helpers"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateImpact = validator.New()

type ImpactController struct {
	DB *gorm.DB
}

func NewImpactController(db *gorm.DB) *ImpactController {
	return &ImpactController{DB: db}
}

func (ctrl *ImpactController) CreateImpact(c *fiber.Ctx) error {
	var body dto.CreateImpactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateImpact.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	impact := model.ImpactModel{
		ImpactValue:    body.ImpactValue,
		ImpactTitle:    body.ImpactTitle,
		ImpactSubtitle: body.ImpactSubtitle,
		ImpactTagID:    body.ImpactTagID,
		ImpactTagIDs:   body.ImpactTagIDs,
		ImpactOrder:    body.ImpactOrder,
		ImpactIsActive: true,
	}
	if body.ImpactIsActive != nil {
		impact.ImpactIsActive = *body.ImpactIsActive
	}
	if err := repository.Create(ctrl.DB, &impact); err != nil {
		return helper.JsonStoreError(c, err, "Impact not found")
	}
	return helper.JsonCreated(c, "Impact created", dto.ImpactRow(impact))
}

func (ctrl *ImpactController) UpdateImpact(c *fiber.Ctx) error {
	var body dto.UpdateImpactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateImpact.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	impact, err := repository.FindByID[model.ImpactModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Impact not found")
	}
	impact.ImpactValue = body.ImpactValue
	impact.ImpactTitle = body.ImpactTitle
	impact.ImpactSubtitle = body.ImpactSubtitle
	impact.ImpactTagID = body.ImpactTagID
	impact.ImpactTagIDs = body.ImpactTagIDs
	impact.ImpactOrder = body.ImpactOrder
	if body.ImpactIsActive != nil {
		impact.ImpactIsActive = *body.ImpactIsActive
	}

	if err := repository.Save(ctrl.DB, impact); err != nil {
		return helper.JsonStoreError(c, err, "Impact not found")
	}
	return helper.JsonUpdated(c, "Impact updated", dto.ImpactRow(*impact))
}

func (ctrl *ImpactController) DeleteImpact(c *fiber.Ctx) error {
	if err := repository.Delete[model.ImpactModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Impact not found")
	}
	return helper.JsonDeleted(c, "Impact deleted")
}

func (ctrl *ImpactController) GetImpacts(c *fiber.Ctx) error {
	rows, err := queries.GetImpacts(ctrl.DB, queries.ImpactOptions{
		Active: helper.QueryBoolPtr(c, "active"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Impact not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

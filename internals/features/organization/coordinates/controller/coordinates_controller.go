package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/coordinates/dto"
	"yayasanku_backend/internals/features/organization/coordinates/model"
	helper "yayasanku_backend/internals/helpers"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateCoordinates = validator.New()

type CoordinatesController struct {
	DB *gorm.DB
}

func NewCoordinatesController(db *gorm.DB) *CoordinatesController {
	return &CoordinatesController{DB: db}
}

func (ctrl *CoordinatesController) CreateCoordinates(c *fiber.Ctx) error {
	var body dto.CreateCoordinatesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoordinates.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	coord := model.CoordinatesModel{
		CoordinatesPhone:    body.CoordinatesPhone,
		CoordinatesEmail:    body.CoordinatesEmail,
		CoordinatesAddress:  body.CoordinatesAddress,
		CoordinatesTagID:    body.CoordinatesTagID,
		CoordinatesMapURL:   body.CoordinatesMapURL,
		CoordinatesOrder:    body.CoordinatesOrder,
		CoordinatesIsActive: true,
	}
	if body.CoordinatesIsActive != nil {
		coord.CoordinatesIsActive = *body.CoordinatesIsActive
	}
	if err := repository.Create(ctrl.DB, &coord); err != nil {
		return helper.JsonStoreError(c, err, "Coordinates not found")
	}
	return helper.JsonCreated(c, "Coordinates created", dto.CoordinatesRow(coord))
}

func (ctrl *CoordinatesController) UpdateCoordinates(c *fiber.Ctx) error {
	var body dto.UpdateCoordinatesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoordinates.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	coord, err := repository.FindByID[model.CoordinatesModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Coordinates not found")
	}
	coord.CoordinatesPhone = body.CoordinatesPhone
	coord.CoordinatesEmail = body.CoordinatesEmail
	coord.CoordinatesAddress = body.CoordinatesAddress
	coord.CoordinatesTagID = body.CoordinatesTagID
	coord.CoordinatesMapURL = body.CoordinatesMapURL
	coord.CoordinatesOrder = body.CoordinatesOrder
	if body.CoordinatesIsActive != nil {
		coord.CoordinatesIsActive = *body.CoordinatesIsActive
	}

	if err := repository.Save(ctrl.DB, coord); err != nil {
		return helper.JsonStoreError(c, err, "Coordinates not found")
	}
	return helper.JsonUpdated(c, "Coordinates updated", dto.CoordinatesRow(*coord))
}

func (ctrl *CoordinatesController) DeleteCoordinates(c *fiber.Ctx) error {
	if err := repository.Delete[model.CoordinatesModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Coordinates not found")
	}
	return helper.JsonDeleted(c, "Coordinates deleted")
}

func (ctrl *CoordinatesController) GetCoordinates(c *fiber.Ctx) error {
	rows, err := queries.GetCoordinates(ctrl.DB, queries.CoordinatesOptions{
		Active: helper.QueryBoolPtr(c, "active"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Coordinates not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

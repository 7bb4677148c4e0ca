package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/tags/dto"
	"yayasanku_backend/internals/features/tags/model"
	helper "yayasanku_backend/internals/helpers"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateTag = validator.New()

type TagController struct {
	DB *gorm.DB
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{DB: db}
}

func (ctrl *TagController) CreateTag(c *fiber.Ctx) error {
	var body dto.CreateTagRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTag.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tag := model.TagModel{TagName: body.TagName}
	if body.TagColor != "" {
		tag.TagColor = body.TagColor
	}
	if err := repository.Create(ctrl.DB, &tag); err != nil {
		return helper.JsonStoreError(c, err, "Tag not found")
	}
	return helper.JsonCreated(c, "Tag created", dto.TagRow(tag))
}

func (ctrl *TagController) UpdateTag(c *fiber.Ctx) error {
	var body dto.UpdateTagRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTag.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tag, err := repository.FindByID[model.TagModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Tag not found")
	}
	tag.TagName = body.TagName
	if body.TagColor != "" {
		tag.TagColor = body.TagColor
	}
	if err := repository.Save(ctrl.DB, tag); err != nil {
		return helper.JsonStoreError(c, err, "Tag not found")
	}
	return helper.JsonUpdated(c, "Tag updated", dto.TagRow(*tag))
}

func (ctrl *TagController) DeleteTag(c *fiber.Ctx) error {
	if err := repository.Delete[model.TagModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Tag not found")
	}
	return helper.JsonDeleted(c, "Tag deleted")
}

func (ctrl *TagController) GetTags(c *fiber.Ctx) error {
	rows, err := queries.GetTags(ctrl.DB)
	if err != nil {
		return helper.JsonStoreError(c, err, "Tag not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

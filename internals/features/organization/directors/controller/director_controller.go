package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/directors/dto"
	"yayasanku_backend/internals/features/organization/directors/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateDirector = validator.New()

type DirectorController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewDirectorController(db *gorm.DB, svc *ossHelper.OSSService) *DirectorController {
	return &DirectorController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Director
// =============================
func (ctrl *DirectorController) CreateDirector(c *fiber.Ctx) error {
	var body dto.CreateDirectorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "image", "director_image", "photo"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "directors")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.DirectorImageURL = url
	}
	if err := validateDirector.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	director := model.DirectorModel{
		DirectorName:           body.DirectorName,
		DirectorImageURL:       body.DirectorImageURL,
		DirectorJobTitle:       body.DirectorJobTitle,
		DirectorResponsibility: body.DirectorResponsibility,
		DirectorOrder:          body.DirectorOrder,
		DirectorCentreID:       body.DirectorCentreID,
		DirectorIsDirector:     body.DirectorIsDirector,
		DirectorIsActive:       true,
	}
	if body.DirectorIsActive != nil {
		director.DirectorIsActive = *body.DirectorIsActive
	}
	if err := repository.Create(ctrl.DB, &director); err != nil {
		return helper.JsonStoreError(c, err, "Director not found")
	}
	return helper.JsonCreated(c, "Director created", dto.DirectorRow(director))
}

// =============================
// 🔄 Update Director
// =============================
func (ctrl *DirectorController) UpdateDirector(c *fiber.Ctx) error {
	var body dto.UpdateDirectorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	director, err := repository.FindByID[model.DirectorModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Director not found")
	}

	if fh := ossHelper.FormFile(c, "image", "director_image", "photo"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "directors")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.DirectorImageURL = url
	}
	if err := validateDirector.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	director.DirectorName = body.DirectorName
	director.DirectorImageURL = body.DirectorImageURL
	director.DirectorJobTitle = body.DirectorJobTitle
	director.DirectorResponsibility = body.DirectorResponsibility
	director.DirectorOrder = body.DirectorOrder
	director.DirectorCentreID = body.DirectorCentreID
	director.DirectorIsDirector = body.DirectorIsDirector
	if body.DirectorIsActive != nil {
		director.DirectorIsActive = *body.DirectorIsActive
	}

	if err := repository.Save(ctrl.DB, director); err != nil {
		return helper.JsonStoreError(c, err, "Director not found")
	}
	return helper.JsonUpdated(c, "Director updated", dto.DirectorRow(*director))
}

// =============================
// 🗑️ Delete Director
// =============================
func (ctrl *DirectorController) DeleteDirector(c *fiber.Ctx) error {
	if err := repository.Delete[model.DirectorModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Director not found")
	}
	return helper.JsonDeleted(c, "Director deleted")
}

// =============================
// 📄 List Directors
// =============================
func (ctrl *DirectorController) GetDirectors(c *fiber.Ctx) error {
	rows, err := queries.GetDirectors(ctrl.DB, queries.DirectorOptions{
		Active:     helper.QueryBoolPtr(c, "active"),
		IsDirector: helper.QueryBoolPtr(c, "is_director"),
		CentreID:   c.Query("centre_id"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Director not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

func (ctrl *DirectorController) GetDirectorByID(c *fiber.Ctx) error {
	row, err := queries.GetDirectorByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Director not found")
	}
	return helper.JsonOK(c, "OK", row)
}

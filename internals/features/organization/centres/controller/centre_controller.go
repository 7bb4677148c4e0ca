package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/centres/dto"
	"yayasanku_backend/internals/features/organization/centres/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateCentre = validator.New()

type CentreController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewCentreController(db *gorm.DB, svc *ossHelper.OSSService) *CentreController {
	return &CentreController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Centre
// =============================
func (ctrl *CentreController) CreateCentre(c *fiber.Ctx) error {
	var body dto.CreateCentreRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "image", "centre_image"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "centres")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.CentreImageURL = url
	}
	if err := validateCentre.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	centre := model.CentreModel{
		CentreName:        body.CentreName,
		CentreDescription: body.CentreDescription,
		CentreAddress:     body.CentreAddress,
		CentrePhone:       body.CentrePhone,
		CentreEmail:       body.CentreEmail,
		CentreHeroID:      body.CentreHeroID,
		CentreVideoID:     body.CentreVideoID,
		CentreDirectorID:  body.CentreDirectorID,
		CentreTagID:       body.CentreTagID,
		CentreImageURL:    body.CentreImageURL,
		CentreOrder:       body.CentreOrder,
		CentreIsActive:    true,
	}
	if body.CentreIsActive != nil {
		centre.CentreIsActive = *body.CentreIsActive
	}
	if err := repository.Create(ctrl.DB, &centre); err != nil {
		return helper.JsonStoreError(c, err, "Centre not found")
	}
	// Re-read through the query layer so the directors array and the other
	// relations come back in the created response as well.
	row, err := queries.GetCentreByID(ctrl.DB, centre.CentreID)
	if err != nil {
		return helper.JsonCreated(c, "Centre created", dto.CentreRow(centre))
	}
	return helper.JsonCreated(c, "Centre created", row)
}

// =============================
// 🔄 Update Centre
// =============================
func (ctrl *CentreController) UpdateCentre(c *fiber.Ctx) error {
	var body dto.UpdateCentreRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	centre, err := repository.FindByID[model.CentreModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Centre not found")
	}

	if fh := ossHelper.FormFile(c, "image", "centre_image"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "centres")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.CentreImageURL = url
	}
	if err := validateCentre.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	centre.CentreName = body.CentreName
	centre.CentreDescription = body.CentreDescription
	centre.CentreAddress = body.CentreAddress
	centre.CentrePhone = body.CentrePhone
	centre.CentreEmail = body.CentreEmail
	centre.CentreHeroID = body.CentreHeroID
	centre.CentreVideoID = body.CentreVideoID
	centre.CentreDirectorID = body.CentreDirectorID
	centre.CentreTagID = body.CentreTagID
	centre.CentreImageURL = body.CentreImageURL
	centre.CentreOrder = body.CentreOrder
	if body.CentreIsActive != nil {
		centre.CentreIsActive = *body.CentreIsActive
	}

	if err := repository.Save(ctrl.DB, centre); err != nil {
		return helper.JsonStoreError(c, err, "Centre not found")
	}
	row, err := queries.GetCentreByID(ctrl.DB, centre.CentreID)
	if err != nil {
		return helper.JsonUpdated(c, "Centre updated", dto.CentreRow(*centre))
	}
	return helper.JsonUpdated(c, "Centre updated", row)
}

// =============================
// 🗑️ Delete Centre
// =============================
func (ctrl *CentreController) DeleteCentre(c *fiber.Ctx) error {
	if err := repository.Delete[model.CentreModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Centre not found")
	}
	return helper.JsonDeleted(c, "Centre deleted")
}

// =============================
// 📄 List Centres (public: active only)
// =============================
func (ctrl *CentreController) GetCentres(c *fiber.Ctx) error {
	active := true
	rows, err := queries.GetCentres(ctrl.DB, queries.CentreOptions{Active: &active})
	if err != nil {
		return helper.JsonStoreError(c, err, "Centre not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

// GetAllCentres is the admin listing: no active filter unless the caller
// asks for one.
func (ctrl *CentreController) GetAllCentres(c *fiber.Ctx) error {
	rows, err := queries.GetCentres(ctrl.DB, queries.CentreOptions{
		Active: helper.QueryBoolPtr(c, "active"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Centre not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

// =============================
// 🔍 Get Centre By ID
// =============================
func (ctrl *CentreController) GetCentreByID(c *fiber.Ctx) error {
	row, err := queries.GetCentreByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Centre not found")
	}
	return helper.JsonOK(c, "OK", row)
}

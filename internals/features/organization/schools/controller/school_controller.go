package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/schools/dto"
	"yayasanku_backend/internals/features/organization/schools/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateSchool = validator.New()

type SchoolController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewSchoolController(db *gorm.DB, svc *ossHelper.OSSService) *SchoolController {
	return &SchoolController{DB: db, OSS: svc}
}

// =============================
// ➕ Create School
// =============================
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var body dto.CreateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "image", "school_image"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "schools")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.SchoolImageURL = url
	}
	if err := validateSchool.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	schoolType := body.SchoolType
	if schoolType == "" {
		schoolType = model.SchoolTypeOther
	}
	school := model.SchoolModel{
		SchoolName:          body.SchoolName,
		SchoolDescription:   body.SchoolDescription,
		SchoolType:          schoolType,
		SchoolImageURL:      body.SchoolImageURL,
		SchoolSubtitle:      body.SchoolSubtitle,
		SchoolTagName:       body.SchoolTagName,
		SchoolCoordinatesID: body.SchoolCoordinatesID,
		SchoolTagID:         body.SchoolTagID,
		SchoolVideoID:       body.SchoolVideoID,
		SchoolOrder:         body.SchoolOrder,
		SchoolIsActive:      true,
	}
	if body.SchoolIsActive != nil {
		school.SchoolIsActive = *body.SchoolIsActive
	}
	if err := repository.Create(ctrl.DB, &school); err != nil {
		return helper.JsonStoreError(c, err, "School not found")
	}
	row, err := queries.GetSchoolByID(ctrl.DB, school.SchoolID)
	if err != nil {
		return helper.JsonCreated(c, "School created", dto.SchoolRow(school))
	}
	return helper.JsonCreated(c, "School created", row)
}

// =============================
// 🔄 Update School
// =============================
func (ctrl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	var body dto.UpdateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	school, err := repository.FindByID[model.SchoolModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "School not found")
	}

	if fh := ossHelper.FormFile(c, "image", "school_image"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "schools")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.SchoolImageURL = url
	}
	if err := validateSchool.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	school.SchoolName = body.SchoolName
	school.SchoolDescription = body.SchoolDescription
	if body.SchoolType != "" {
		school.SchoolType = body.SchoolType
	}
	school.SchoolImageURL = body.SchoolImageURL
	school.SchoolSubtitle = body.SchoolSubtitle
	school.SchoolTagName = body.SchoolTagName
	school.SchoolCoordinatesID = body.SchoolCoordinatesID
	school.SchoolTagID = body.SchoolTagID
	school.SchoolVideoID = body.SchoolVideoID
	school.SchoolOrder = body.SchoolOrder
	if body.SchoolIsActive != nil {
		school.SchoolIsActive = *body.SchoolIsActive
	}

	if err := repository.Save(ctrl.DB, school); err != nil {
		return helper.JsonStoreError(c, err, "School not found")
	}
	row, err := queries.GetSchoolByID(ctrl.DB, school.SchoolID)
	if err != nil {
		return helper.JsonUpdated(c, "School updated", dto.SchoolRow(*school))
	}
	return helper.JsonUpdated(c, "School updated", row)
}

// =============================
// 🗑️ Delete School
// =============================
func (ctrl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	if err := repository.Delete[model.SchoolModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "School not found")
	}
	return helper.JsonDeleted(c, "School deleted")
}

// =============================
// 📄 List Schools (public: active only by default)
// =============================
func (ctrl *SchoolController) GetSchools(c *fiber.Ctx) error {
	opt := queries.DefaultSchoolOptions()
	opt.Type = c.Query("type")
	opt.SearchTerm = c.Query("search")
	rows, err := queries.GetSchools(ctrl.DB, opt)
	if err != nil {
		return helper.JsonStoreError(c, err, "School not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

// GetAllSchools is the admin listing: without an explicit active query the
// filter is bypassed and inactive schools come back too.
func (ctrl *SchoolController) GetAllSchools(c *fiber.Ctx) error {
	rows, err := queries.GetSchools(ctrl.DB, queries.SchoolOptions{
		Active:     helper.QueryBoolPtr(c, "active"),
		Type:       c.Query("type"),
		SearchTerm: c.Query("search"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "School not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

// =============================
// 🔍 Get School By ID
// =============================
func (ctrl *SchoolController) GetSchoolByID(c *fiber.Ctx) error {
	row, err := queries.GetSchoolByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "School not found")
	}
	return helper.JsonOK(c, "OK", row)
}

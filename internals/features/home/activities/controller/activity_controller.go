package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/activities/dto"
	"yayasanku_backend/internals/features/home/activities/model"
	helper "yayasanku_backend/internals/helpers"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateActivity = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// =============================
// ➕ Create Activity
// =============================
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	var body dto.CreateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateActivity.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	activity := model.ActivityModel{
		ActivityTitle:            body.ActivityTitle,
		ActivitySubtitle:         body.ActivitySubtitle,
		ActivityDescription:      body.ActivityDescription,
		ActivitySectionID:        body.ActivitySectionID,
		ActivityVideoID:          body.ActivityVideoID,
		ActivityPhotoID:          body.ActivityPhotoID,
		ActivityTagID:            body.ActivityTagID,
		ActivityVideoDescription: body.ActivityVideoDescription,
		ActivityPhotoDescription: body.ActivityPhotoDescription,
		ActivityOrder:            body.ActivityOrder,
		ActivityIsActive:         true,
	}
	if body.ActivityIsActive != nil {
		activity.ActivityIsActive = *body.ActivityIsActive
	}
	if err := repository.Create(ctrl.DB, &activity); err != nil {
		return helper.JsonStoreError(c, err, "Activity not found")
	}
	return helper.JsonCreated(c, "Activity created", dto.ActivityRow(activity))
}

// =============================
// 🔄 Update Activity
// =============================
func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	var body dto.UpdateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateActivity.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	activity, err := repository.FindByID[model.ActivityModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Activity not found")
	}
	activity.ActivityTitle = body.ActivityTitle
	activity.ActivitySubtitle = body.ActivitySubtitle
	activity.ActivityDescription = body.ActivityDescription
	activity.ActivitySectionID = body.ActivitySectionID
	activity.ActivityVideoID = body.ActivityVideoID
	activity.ActivityPhotoID = body.ActivityPhotoID
	activity.ActivityTagID = body.ActivityTagID
	activity.ActivityVideoDescription = body.ActivityVideoDescription
	activity.ActivityPhotoDescription = body.ActivityPhotoDescription
	activity.ActivityOrder = body.ActivityOrder
	if body.ActivityIsActive != nil {
		activity.ActivityIsActive = *body.ActivityIsActive
	}

	if err := repository.Save(ctrl.DB, activity); err != nil {
		return helper.JsonStoreError(c, err, "Activity not found")
	}
	return helper.JsonUpdated(c, "Activity updated", dto.ActivityRow(*activity))
}

// =============================
// 🗑️ Delete Activity
// =============================
func (ctrl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	if err := repository.Delete[model.ActivityModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Activity not found")
	}
	return helper.JsonDeleted(c, "Activity deleted")
}

// =============================
// 📄 List Activities
// =============================
func (ctrl *ActivityController) GetActivities(c *fiber.Ctx) error {
	rows, err := queries.GetActivities(ctrl.DB, queries.ActivityOptions{
		Active:    helper.QueryBoolPtr(c, "active"),
		SectionID: c.Query("section_id"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Activity not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

// GetActivityByID returns one activity with its section, video, photo and
// tag stitched in.
func (ctrl *ActivityController) GetActivityByID(c *fiber.Ctx) error {
	row, err := queries.GetActivityWithRelations(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Activity not found")
	}
	return helper.JsonOK(c, "OK", row)
}

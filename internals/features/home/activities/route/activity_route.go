package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityCtl "yayasanku_backend/internals/features/home/activities/controller"
)

func ActivityPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityCtl.NewActivityController(db)

	grp := r.Group("/activities")
	grp.Get("/", ctrl.GetActivities)
	grp.Get("/:id", ctrl.GetActivityByID)
}

func ActivityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityCtl.NewActivityController(db)

	grp := r.Group("/activities")
	grp.Get("/", ctrl.GetActivities)
	grp.Get("/:id", ctrl.GetActivityByID)
	grp.Post("/", ctrl.CreateActivity)
	grp.Put("/:id", ctrl.UpdateActivity)
	grp.Delete("/:id", ctrl.DeleteActivity)
}

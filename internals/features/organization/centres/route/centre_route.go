package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	centreCtl "yayasanku_backend/internals/features/organization/centres/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func CentrePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := centreCtl.NewCentreController(db, nil)

	grp := r.Group("/centres")
	grp.Get("/", ctrl.GetCentres)
	grp.Get("/:id", ctrl.GetCentreByID)
}

func CentreAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := centreCtl.NewCentreController(db, oss)

	grp := r.Group("/centres")
	grp.Get("/", ctrl.GetAllCentres)
	grp.Get("/:id", ctrl.GetCentreByID)
	grp.Post("/", ctrl.CreateCentre)
	grp.Put("/:id", ctrl.UpdateCentre)
	grp.Delete("/:id", ctrl.DeleteCentre)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coordCtl "yayasanku_backend/internals/features/organization/coordinates/controller"
)

func CoordinatesPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := coordCtl.NewCoordinatesController(db)

	r.Get("/coordinates", ctrl.GetCoordinates)
}

func CoordinatesAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := coordCtl.NewCoordinatesController(db)

	grp := r.Group("/coordinates")
	grp.Get("/", ctrl.GetCoordinates)
	grp.Post("/", ctrl.CreateCoordinates)
	grp.Put("/:id", ctrl.UpdateCoordinates)
	grp.Delete("/:id", ctrl.DeleteCoordinates)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	directorCtl "yayasanku_backend/internals/features/organization/directors/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func DirectorPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := directorCtl.NewDirectorController(db, nil)

	grp := r.Group("/directors")
	grp.Get("/", ctrl.GetDirectors)
	grp.Get("/:id", ctrl.GetDirectorByID)
}

func DirectorAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := directorCtl.NewDirectorController(db, oss)

	grp := r.Group("/directors")
	grp.Get("/", ctrl.GetDirectors)
	grp.Get("/:id", ctrl.GetDirectorByID)
	grp.Post("/", ctrl.CreateDirector)
	grp.Put("/:id", ctrl.UpdateDirector)
	grp.Delete("/:id", ctrl.DeleteDirector)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagCtl "yayasanku_backend/internals/features/tags/controller"
)

func TagPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tagCtl.NewTagController(db)

	r.Get("/tags", ctrl.GetTags)
}

func TagAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tagCtl.NewTagController(db)

	grp := r.Group("/tags")
	grp.Get("/", ctrl.GetTags)
	grp.Post("/", ctrl.CreateTag)
	grp.Put("/:id", ctrl.UpdateTag)
	grp.Delete("/:id", ctrl.DeleteTag)
}

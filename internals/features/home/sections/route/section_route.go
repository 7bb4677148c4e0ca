package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionCtl "yayasanku_backend/internals/features/home/sections/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func SectionPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sectionCtl.NewSectionController(db, nil)

	grp := r.Group("/sections")
	grp.Get("/", ctrl.GetSections)
	grp.Get("/:id", ctrl.GetSectionByID)
}

func SectionAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := sectionCtl.NewSectionController(db, oss)

	grp := r.Group("/sections")
	grp.Get("/", ctrl.GetSections)
	grp.Get("/:id", ctrl.GetSectionByID)
	grp.Post("/", ctrl.CreateSection)
	grp.Put("/:id", ctrl.UpdateSection)
	grp.Delete("/:id", ctrl.DeleteSection)
}

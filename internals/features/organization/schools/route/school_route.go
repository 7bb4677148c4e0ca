package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolCtl "yayasanku_backend/internals/features/organization/schools/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolCtl.NewSchoolController(db, nil)

	grp := r.Group("/schools")
	grp.Get("/", ctrl.GetSchools)
	grp.Get("/:id", ctrl.GetSchoolByID)
}

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := schoolCtl.NewSchoolController(db, oss)

	grp := r.Group("/schools")
	grp.Get("/", ctrl.GetAllSchools)
	grp.Get("/:id", ctrl.GetSchoolByID)
	grp.Post("/", ctrl.CreateSchool)
	grp.Put("/:id", ctrl.UpdateSchool)
	grp.Delete("/:id", ctrl.DeleteSchool)
}

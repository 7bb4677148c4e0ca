package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	impactCtl "yayasanku_backend/internals/features/home/impacts/controller"
)

func ImpactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := impactCtl.NewImpactController(db)

	r.Get("/impacts", ctrl.GetImpacts)
}

func ImpactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := impactCtl.NewImpactController(db)

	grp := r.Group("/impacts")
	grp.Get("/", ctrl.GetImpacts)
	grp.Post("/", ctrl.CreateImpact)
	grp.Put("/:id", ctrl.UpdateImpact)
	grp.Delete("/:id", ctrl.DeleteImpact)
}

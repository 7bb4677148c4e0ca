package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partnerCtl "yayasanku_backend/internals/features/home/partners/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func PartnerPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := partnerCtl.NewPartnerController(db, nil)

	grp := r.Group("/partners")
	grp.Get("/", ctrl.GetPartners)
	grp.Get("/:id", ctrl.GetPartnerByID)
}

func PartnerAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := partnerCtl.NewPartnerController(db, oss)

	grp := r.Group("/partners")
	grp.Get("/", ctrl.GetPartners)
	grp.Get("/:id", ctrl.GetPartnerByID)
	grp.Post("/", ctrl.CreatePartner)
	grp.Put("/:id", ctrl.UpdatePartner)
	grp.Delete("/:id", ctrl.DeletePartner)
}

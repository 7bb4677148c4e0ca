package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	heroCtl "yayasanku_backend/internals/features/home/heroes/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func HeroPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := heroCtl.NewHeroController(db, nil)

	grp := r.Group("/heroes")
	grp.Get("/", ctrl.GetHeroes)
	grp.Get("/:id", ctrl.GetHeroByID)
}

func HeroAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := heroCtl.NewHeroController(db, oss)

	grp := r.Group("/heroes")
	grp.Get("/", ctrl.GetHeroes)
	grp.Get("/:id", ctrl.GetHeroByID)
	grp.Post("/", ctrl.CreateHero)
	grp.Put("/:id", ctrl.UpdateHero)
	grp.Delete("/:id", ctrl.DeleteHero)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videoCtl "yayasanku_backend/internals/features/contents/videos/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func VideoPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := videoCtl.NewVideoController(db, nil)

	grp := r.Group("/videos")
	grp.Get("/", ctrl.GetVideos)
	grp.Get("/:id", ctrl.GetVideoByID)
}

func VideoAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := videoCtl.NewVideoController(db, oss)

	grp := r.Group("/videos")
	grp.Get("/", ctrl.GetVideos)
	grp.Get("/:id", ctrl.GetVideoByID)
	grp.Post("/", ctrl.CreateVideo)
	grp.Put("/:id", ctrl.UpdateVideo)
	grp.Delete("/:id", ctrl.DeleteVideo)
}

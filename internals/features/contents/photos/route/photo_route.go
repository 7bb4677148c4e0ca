package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	photoCtl "yayasanku_backend/internals/features/contents/photos/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func PhotoPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := photoCtl.NewPhotoController(db, nil)

	grp := r.Group("/photos")
	grp.Get("/", ctrl.GetPhotos)
	grp.Get("/:id", ctrl.GetPhotoByID)
	grp.Get("/:id/tags", ctrl.GetPhotoTags)
}

func PhotoAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := photoCtl.NewPhotoController(db, oss)

	grp := r.Group("/photos")
	grp.Get("/", ctrl.GetPhotos)
	grp.Get("/:id", ctrl.GetPhotoByID)
	grp.Get("/:id/tags", ctrl.GetPhotoTags)
	grp.Post("/", ctrl.CreatePhoto)
	grp.Put("/:id", ctrl.UpdatePhoto)
	grp.Delete("/:id", ctrl.DeletePhoto)
}

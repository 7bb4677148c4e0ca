package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	libraryCtl "yayasanku_backend/internals/features/contents/library/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func LibraryPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := libraryCtl.NewLibraryController(db, nil)

	grp := r.Group("/library")
	grp.Get("/", ctrl.GetLibraryItems)
	grp.Get("/:id", ctrl.GetLibraryItemByID)
	// download counter bumps on the public side; the frontend calls it
	// right before handing out the file URL
	grp.Post("/:id/download", ctrl.CountDownload)
}

func LibraryAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := libraryCtl.NewLibraryController(db, oss)

	grp := r.Group("/library")
	grp.Get("/", ctrl.GetLibraryItems)
	grp.Get("/:id", ctrl.GetLibraryItemByID)
	grp.Post("/", ctrl.CreateLibraryItem)
	grp.Put("/:id", ctrl.UpdateLibraryItem)
	grp.Delete("/:id", ctrl.DeleteLibraryItem)
}

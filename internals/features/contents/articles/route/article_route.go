package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleCtl "yayasanku_backend/internals/features/contents/articles/controller"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

func ArticlePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := articleCtl.NewArticleController(db, nil)

	grp := r.Group("/articles")
	grp.Get("/", ctrl.GetArticles)
	grp.Get("/:id", ctrl.GetArticleByID)
}

func ArticleAdminRoutes(r fiber.Router, db *gorm.DB, oss *ossHelper.OSSService) {
	ctrl := articleCtl.NewArticleController(db, oss)

	grp := r.Group("/articles")
	grp.Get("/", ctrl.GetArticles)
	grp.Get("/:id", ctrl.GetArticleByID)
	grp.Post("/", ctrl.CreateArticle)
	grp.Put("/:id", ctrl.UpdateArticle)
	grp.Delete("/:id", ctrl.DeleteArticle)
}

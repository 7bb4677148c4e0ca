package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/articles/dto"
	"yayasanku_backend/internals/features/contents/articles/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateArticle = validator.New()

type ArticleController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewArticleController(db *gorm.DB, svc *ossHelper.OSSService) *ArticleController {
	return &ArticleController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Article
// =============================
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	imageURLs := body.ArticleImageURLs
	if fh := ossHelper.FormFile(c, "image", "article_image"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "articles")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		imageURLs = append(imageURLs, url)
	}

	status := body.ArticleStatus
	if status == "" {
		status = model.ArticleStatusDraft
	}
	article := model.ArticleModel{
		ArticleTitle:      body.ArticleTitle,
		ArticleContent:    body.ArticleContent,
		ArticleExcerpt:    body.ArticleExcerpt,
		ArticleImageURLs:  imageURLs,
		ArticleAuthor:     body.ArticleAuthor,
		ArticleTagIDs:     body.ArticleTagIDs,
		ArticleIsFeatured: body.ArticleIsFeatured,
		ArticleStatus:     status,
	}
	if status == model.ArticleStatusPublished {
		now := time.Now()
		article.ArticlePublishedAt = &now
	}

	if err := repository.Create(ctrl.DB, &article); err != nil {
		return helper.JsonStoreError(c, err, "Article not found")
	}
	return helper.JsonCreated(c, "Article created", dto.ArticleRow(article))
}

// =============================
// 🔄 Update Article
// =============================
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	article, err := repository.FindByID[model.ArticleModel](ctrl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err, "Article not found")
	}

	article.ArticleTitle = body.ArticleTitle
	article.ArticleContent = body.ArticleContent
	article.ArticleExcerpt = body.ArticleExcerpt
	article.ArticleImageURLs = body.ArticleImageURLs
	article.ArticleAuthor = body.ArticleAuthor
	article.ArticleTagIDs = body.ArticleTagIDs
	article.ArticleIsFeatured = body.ArticleIsFeatured
	if body.ArticleStatus != "" {
		if body.ArticleStatus == model.ArticleStatusPublished && article.ArticlePublishedAt == nil {
			now := time.Now()
			article.ArticlePublishedAt = &now
		}
		article.ArticleStatus = body.ArticleStatus
	}
	if fh := ossHelper.FormFile(c, "image", "article_image"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "articles")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		article.ArticleImageURLs = append(article.ArticleImageURLs, url)
	}

	if err := repository.Save(ctrl.DB, article); err != nil {
		return helper.JsonStoreError(c, err, "Article not found")
	}
	return helper.JsonUpdated(c, "Article updated", dto.ArticleRow(*article))
}

// =============================
// 🗑️ Delete Article
// =============================
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	if err := repository.Delete[model.ArticleModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Article not found")
	}
	return helper.JsonDeleted(c, "Article deleted")
}

// =============================
// 📄 List Articles
// =============================
func (ctrl *ArticleController) GetArticles(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	opt := queries.ArticleOptions{
		Status:     c.Query("status"),
		Featured:   helper.QueryBoolPtr(c, "featured"),
		SearchTerm: c.Query("search"),
		Limit:      paging.Limit,
		Offset:     paging.Offset,
	}
	rows, total, err := queries.GetArticles(ctrl.DB, opt)
	if err != nil {
		return helper.JsonStoreError(c, err, "Article not found")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "OK", rows, pg)
}

// =============================
// 🔍 Get Article By ID
// =============================
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	row, err := queries.GetArticleByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Article not found")
	}
	return helper.JsonOK(c, "OK", row)
}

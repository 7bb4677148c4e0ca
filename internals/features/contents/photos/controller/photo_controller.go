package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/photos/dto"
	"yayasanku_backend/internals/features/contents/photos/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validatePhoto = validator.New()

type PhotoController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewPhotoController(db *gorm.DB, svc *ossHelper.OSSService) *PhotoController {
	return &PhotoController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Photo
// =============================
func (ctrl *PhotoController) CreatePhoto(c *fiber.Ctx) error {
	var body dto.CreatePhotoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "image", "photo_image"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "photos")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.PhotoImageURL = url
	}
	if err := validatePhoto.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	category := strings.TrimSpace(body.PhotoCategory)
	if category == "" {
		category = model.PhotoDefaultCategory
	}
	status := body.PhotoStatus
	if status == "" {
		status = model.PhotoStatusPublished
	}
	photo := model.PhotoModel{
		PhotoTitle:        body.PhotoTitle,
		PhotoDescription:  body.PhotoDescription,
		PhotoImageURL:     body.PhotoImageURL,
		PhotoThumbnailURL: body.PhotoThumbnailURL,
		PhotoCategory:     category,
		PhotoIsFeatured:   body.PhotoIsFeatured,
		PhotoStatus:       status,
		PhotoGalleryURLs:  body.PhotoGalleryURLs,
		PhotoTagIDs:       body.PhotoTagIDs,
	}

	if err := repository.Create(ctrl.DB, &photo); err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}
	return helper.JsonCreated(c, "Photo created", dto.PhotoRow(photo))
}

// =============================
// 🔄 Update Photo
// =============================
func (ctrl *PhotoController) UpdatePhoto(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdatePhotoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	photo, err := repository.FindByID[model.PhotoModel](ctrl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}

	if fh := ossHelper.FormFile(c, "image", "photo_image"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "photos")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.PhotoImageURL = url
	}
	if body.PhotoImageURL == "" {
		body.PhotoImageURL = photo.PhotoImageURL
	}
	if err := validatePhoto.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	photo.PhotoTitle = body.PhotoTitle
	photo.PhotoDescription = body.PhotoDescription
	photo.PhotoImageURL = body.PhotoImageURL
	photo.PhotoThumbnailURL = body.PhotoThumbnailURL
	if strings.TrimSpace(body.PhotoCategory) != "" {
		photo.PhotoCategory = body.PhotoCategory
	}
	photo.PhotoIsFeatured = body.PhotoIsFeatured
	if body.PhotoStatus != "" {
		photo.PhotoStatus = body.PhotoStatus
	}
	photo.PhotoGalleryURLs = body.PhotoGalleryURLs
	photo.PhotoTagIDs = body.PhotoTagIDs

	if err := repository.Save(ctrl.DB, photo); err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}
	return helper.JsonUpdated(c, "Photo updated", dto.PhotoRow(*photo))
}

// =============================
// 🗑️ Delete Photo
// =============================
func (ctrl *PhotoController) DeletePhoto(c *fiber.Ctx) error {
	if err := repository.Delete[model.PhotoModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}
	return helper.JsonDeleted(c, "Photo deleted")
}

// =============================
// 📄 List Photos
// =============================
func (ctrl *PhotoController) GetPhotos(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var tagIDs []string
	if raw := strings.TrimSpace(c.Query("tag_ids")); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				tagIDs = append(tagIDs, p)
			}
		}
	}

	rows, total, err := queries.GetPhotos(ctrl.DB, queries.PhotoOptions{
		Status:     c.Query("status"),
		Featured:   helper.QueryBoolPtr(c, "featured"),
		Category:   c.Query("category"),
		TagIDs:     tagIDs,
		SearchTerm: c.Query("search"),
		Limit:      paging.Limit,
		Offset:     paging.Offset,
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "OK", rows, pg)
}

// =============================
// 🔍 Get Photo By ID
// =============================
func (ctrl *PhotoController) GetPhotoByID(c *fiber.Ctx) error {
	row, err := queries.GetPhotoByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}
	return helper.JsonOK(c, "OK", row)
}

// =============================
// 🏷️ Resolve Photo Tags
// =============================
// Tag names live in a separate table; the id→name join happens in memory and
// deleted tag ids silently drop out.
func (ctrl *PhotoController) GetPhotoTags(c *fiber.Ctx) error {
	photo, err := repository.FindByID[model.PhotoModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}
	tags, err := queries.ResolveTags(ctrl.DB, photo.PhotoTagIDs)
	if err != nil {
		return helper.JsonStoreError(c, err, "Photo not found")
	}
	return helper.JsonOK(c, "OK", tags)
}

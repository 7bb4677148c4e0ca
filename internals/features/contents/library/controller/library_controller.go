package controller

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/library/dto"
	"yayasanku_backend/internals/features/contents/library/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateLibrary = validator.New()

type LibraryController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewLibraryController(db *gorm.DB, svc *ossHelper.OSSService) *LibraryController {
	return &LibraryController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Library Item
// =============================
func (ctrl *LibraryController) CreateLibraryItem(c *fiber.Ctx) error {
	var body dto.CreateLibraryItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "file", "library_item_file"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadFile(c.UserContext(), fh, "library")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.LibraryItemFileURL = url
		body.LibraryItemFileName = fh.Filename
		body.LibraryItemFileSize = fh.Size
		body.LibraryItemFileType = strings.TrimPrefix(filepath.Ext(fh.Filename), ".")
	}
	if err := validateLibrary.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := body.LibraryItemStatus
	if status == "" {
		status = model.LibraryItemStatusDraft
	}
	category := strings.TrimSpace(body.LibraryItemCategory)
	if category == "" {
		category = "General"
	}
	item := model.LibraryItemModel{
		LibraryItemTitle:       body.LibraryItemTitle,
		LibraryItemDescription: body.LibraryItemDescription,
		LibraryItemFileURL:     body.LibraryItemFileURL,
		LibraryItemFileName:    body.LibraryItemFileName,
		LibraryItemFileSize:    body.LibraryItemFileSize,
		LibraryItemFileType:    body.LibraryItemFileType,
		LibraryItemCategory:    category,
		LibraryItemIsFeatured:  body.LibraryItemIsFeatured,
		LibraryItemStatus:      status,
		LibraryItemAuthor:      body.LibraryItemAuthor,
		LibraryItemTagIDs:      body.LibraryItemTagIDs,
	}

	if err := repository.Create(ctrl.DB, &item); err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}
	return helper.JsonCreated(c, "Library item created", dto.LibraryItemRow(item))
}

// =============================
// 🔄 Update Library Item
// =============================
func (ctrl *LibraryController) UpdateLibraryItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateLibraryItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := repository.FindByID[model.LibraryItemModel](ctrl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}

	if fh := ossHelper.FormFile(c, "file", "library_item_file"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadFile(c.UserContext(), fh, "library")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.LibraryItemFileURL = url
		body.LibraryItemFileName = fh.Filename
		body.LibraryItemFileSize = fh.Size
		body.LibraryItemFileType = strings.TrimPrefix(filepath.Ext(fh.Filename), ".")
	}
	if body.LibraryItemFileURL == "" {
		body.LibraryItemFileURL = item.LibraryItemFileURL
	}
	if err := validateLibrary.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item.LibraryItemTitle = body.LibraryItemTitle
	item.LibraryItemDescription = body.LibraryItemDescription
	item.LibraryItemFileURL = body.LibraryItemFileURL
	item.LibraryItemFileName = body.LibraryItemFileName
	item.LibraryItemFileSize = body.LibraryItemFileSize
	item.LibraryItemFileType = body.LibraryItemFileType
	if strings.TrimSpace(body.LibraryItemCategory) != "" {
		item.LibraryItemCategory = body.LibraryItemCategory
	}
	item.LibraryItemIsFeatured = body.LibraryItemIsFeatured
	if body.LibraryItemStatus != "" {
		item.LibraryItemStatus = body.LibraryItemStatus
	}
	item.LibraryItemAuthor = body.LibraryItemAuthor
	item.LibraryItemTagIDs = body.LibraryItemTagIDs

	if err := repository.Save(ctrl.DB, item); err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}
	return helper.JsonUpdated(c, "Library item updated", dto.LibraryItemRow(*item))
}

// =============================
// 🗑️ Delete Library Item
// =============================
func (ctrl *LibraryController) DeleteLibraryItem(c *fiber.Ctx) error {
	if err := repository.Delete[model.LibraryItemModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}
	return helper.JsonDeleted(c, "Library item deleted")
}

// =============================
// 📄 List Library Items
// =============================
func (ctrl *LibraryController) GetLibraryItems(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	rows, total, err := queries.GetLibraryItems(ctrl.DB, queries.LibraryOptions{
		Status:     c.Query("status"),
		Featured:   helper.QueryBoolPtr(c, "featured"),
		Category:   c.Query("category"),
		SearchTerm: c.Query("search"),
		Limit:      paging.Limit,
		Offset:     paging.Offset,
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "OK", rows, pg)
}

// =============================
// 🔍 Get Library Item By ID
// =============================
func (ctrl *LibraryController) GetLibraryItemByID(c *fiber.Ctx) error {
	row, err := queries.GetLibraryItemByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}
	return helper.JsonOK(c, "OK", row)
}

// =============================
// ⬇️ Count a Download
// =============================
func (ctrl *LibraryController) CountDownload(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := queries.IncrementLibraryDownloads(ctrl.DB, id); err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}
	row, err := queries.GetLibraryItemByID(ctrl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err, "Library item not found")
	}
	return helper.JsonOK(c, "Download counted", row)
}

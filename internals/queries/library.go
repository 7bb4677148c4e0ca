package queries

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/library/dto"
	"yayasanku_backend/internals/features/contents/library/model"
	"yayasanku_backend/internals/repository"
)

type LibraryOptions struct {
	Status     string
	Featured   *bool
	Category   string
	SearchTerm string
	Limit      int
	Offset     int
}

var librarySearchCols = []string{
	"library_item_title", "library_item_description", "library_item_author",
}

func GetLibraryItems(db *gorm.DB, opt LibraryOptions) ([]fiber.Map, int64, error) {
	if opt.Limit <= 0 {
		opt.Limit = 10
	}
	var scopes []repository.Scope
	if opt.Status != "" {
		scopes = append(scopes, eq("library_item_status", opt.Status))
	}
	if opt.Featured != nil {
		scopes = append(scopes, eq("library_item_is_featured", *opt.Featured))
	}
	if opt.Category != "" {
		scopes = append(scopes, eq("library_item_category", opt.Category))
	}
	if s := strings.TrimSpace(opt.SearchTerm); s != "" {
		scopes = append(scopes, searchAcross(librarySearchCols, s))
	}

	lo := repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "library_item_created_at DESC",
		Scopes:  scopes,
	}
	rows, err := repository.FindAll[model.LibraryItemModel](db, lo)
	if err != nil {
		return nil, 0, err
	}
	total, err := repository.Count[model.LibraryItemModel](db, lo)
	if err != nil {
		return nil, 0, err
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.LibraryItemRow(m))
	}
	return out, total, nil
}

func GetLibraryItemByID(db *gorm.DB, id string) (fiber.Map, error) {
	m, err := repository.FindByID[model.LibraryItemModel](db, id)
	if err != nil {
		return nil, err
	}
	return dto.LibraryItemRow(*m), nil
}

// IncrementLibraryDownloads bumps the download counter in a single statement.
func IncrementLibraryDownloads(db *gorm.DB, id string) error {
	return db.Model(&model.LibraryItemModel{}).
		Where("library_item_id = ?", id).
		UpdateColumn("library_item_downloads", gorm.Expr("library_item_downloads + 1")).Error
}

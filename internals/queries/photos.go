package queries

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/photos/dto"
	"yayasanku_backend/internals/features/contents/photos/model"
	"yayasanku_backend/internals/repository"
)

type PhotoOptions struct {
	Status     string
	Featured   *bool
	Category   string
	TagIDs     []string
	SearchTerm string
	Limit      int
	Offset     int
}

var photoSearchCols = []string{"photo_title", "photo_description"}

func GetPhotos(db *gorm.DB, opt PhotoOptions) ([]fiber.Map, int64, error) {
	if opt.Limit <= 0 {
		opt.Limit = 10
	}
	var scopes []repository.Scope
	if opt.Status != "" {
		scopes = append(scopes, eq("photo_status", opt.Status))
	}
	if opt.Featured != nil {
		scopes = append(scopes, eq("photo_is_featured", *opt.Featured))
	}
	if opt.Category != "" {
		scopes = append(scopes, eq("photo_category", opt.Category))
	}
	if len(opt.TagIDs) > 0 {
		scopes = append(scopes, tagsOverlap("photo_tag_ids", opt.TagIDs))
	}
	if s := strings.TrimSpace(opt.SearchTerm); s != "" {
		scopes = append(scopes, searchAcross(photoSearchCols, s))
	}

	lo := repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "photo_created_at DESC",
		Scopes:  scopes,
	}
	rows, err := repository.FindAll[model.PhotoModel](db, lo)
	if err != nil {
		return nil, 0, err
	}
	total, err := repository.Count[model.PhotoModel](db, lo)
	if err != nil {
		return nil, 0, err
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.PhotoRow(m))
	}
	return out, total, nil
}

func GetPhotoByID(db *gorm.DB, id string) (fiber.Map, error) {
	m, err := repository.FindByID[model.PhotoModel](db, id)
	if err != nil {
		return nil, err
	}
	return dto.PhotoRow(*m), nil
}

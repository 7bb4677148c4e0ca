package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/coordinates/dto"
	"yayasanku_backend/internals/features/organization/coordinates/model"
	"yayasanku_backend/internals/repository"
)

type CoordinatesOptions struct {
	Active *bool
	Limit  int
	Offset int
}

func GetCoordinates(db *gorm.DB, opt CoordinatesOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	scopes := []repository.Scope{
		func(q *gorm.DB) *gorm.DB { return q.Preload("Tag") },
	}
	if opt.Active != nil {
		scopes = append(scopes, eq("coordinates_is_active", *opt.Active))
	}
	rows, err := repository.FindAll[model.CoordinatesModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "coordinates_order ASC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.CoordinatesRow(m))
	}
	return out, nil
}

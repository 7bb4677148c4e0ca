package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/directors/dto"
	"yayasanku_backend/internals/features/organization/directors/model"
	"yayasanku_backend/internals/repository"
)

type DirectorOptions struct {
	Active     *bool
	IsDirector *bool
	CentreID   string
	Limit      int
	Offset     int
}

func GetDirectors(db *gorm.DB, opt DirectorOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	var scopes []repository.Scope
	if opt.Active != nil {
		scopes = append(scopes, eq("director_is_active", *opt.Active))
	}
	if opt.IsDirector != nil {
		scopes = append(scopes, eq("director_is_director", *opt.IsDirector))
	}
	if opt.CentreID != "" {
		scopes = append(scopes, eq("director_centre_id", opt.CentreID))
	}
	rows, err := repository.FindAll[model.DirectorModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "director_order ASC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.DirectorRow(m))
	}
	return out, nil
}

func GetDirectorByID(db *gorm.DB, id string) (fiber.Map, error) {
	m, err := repository.FindByID[model.DirectorModel](db, id)
	if err != nil {
		return nil, err
	}
	return dto.DirectorRow(*m), nil
}

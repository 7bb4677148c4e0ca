package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/heroes/dto"
	"yayasanku_backend/internals/features/home/heroes/model"
	"yayasanku_backend/internals/repository"
)

const activeListLimit = 1000

type HeroOptions struct {
	Active *bool
	Limit  int
	Offset int
}

func GetHeroes(db *gorm.DB, opt HeroOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	var scopes []repository.Scope
	if opt.Active != nil {
		scopes = append(scopes, eq("hero_is_active", *opt.Active))
	}
	rows, err := repository.FindAll[model.HeroModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "hero_order ASC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.HeroRow(m))
	}
	return out, nil
}

func GetHeroByID(db *gorm.DB, id string) (fiber.Map, error) {
	m, err := repository.FindByID[model.HeroModel](db, id)
	if err != nil {
		return nil, err
	}
	return dto.HeroRow(*m), nil
}

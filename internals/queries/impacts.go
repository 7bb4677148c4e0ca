package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/impacts/dto"
	"yayasanku_backend/internals/features/home/impacts/model"
	"yayasanku_backend/internals/repository"
)

type ImpactOptions struct {
	Active *bool
	Limit  int
	Offset int
}

func GetImpacts(db *gorm.DB, opt ImpactOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	scopes := []repository.Scope{
		func(q *gorm.DB) *gorm.DB { return q.Preload("Tag") },
	}
	if opt.Active != nil {
		scopes = append(scopes, eq("impact_is_active", *opt.Active))
	}
	rows, err := repository.FindAll[model.ImpactModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "impact_order ASC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ImpactRow(m))
	}
	return out, nil
}

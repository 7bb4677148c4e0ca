package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/sections/dto"
	"yayasanku_backend/internals/features/home/sections/model"
	"yayasanku_backend/internals/repository"
)

type SectionOptions struct {
	Active *bool
	Limit  int
	Offset int
}

func GetSections(db *gorm.DB, opt SectionOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	scopes := []repository.Scope{
		func(q *gorm.DB) *gorm.DB { return q.Preload("Hero") },
	}
	if opt.Active != nil {
		scopes = append(scopes, eq("section_is_active", *opt.Active))
	}
	rows, err := repository.FindAll[model.SectionModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "section_order ASC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.SectionRow(m))
	}
	return out, nil
}

func GetSectionByID(db *gorm.DB, id string) (fiber.Map, error) {
	var m model.SectionModel
	if err := db.Preload("Hero").First(&m, "section_id = ?", id).Error; err != nil {
		return nil, err
	}
	return dto.SectionRow(m), nil
}

package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/partners/dto"
	"yayasanku_backend/internals/features/home/partners/model"
	"yayasanku_backend/internals/repository"
)

type PartnerOptions struct {
	Active *bool
	TagIDs []string
	Limit  int
	Offset int
}

func GetPartners(db *gorm.DB, opt PartnerOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	var scopes []repository.Scope
	if opt.Active != nil {
		scopes = append(scopes, eq("partner_is_active", *opt.Active))
	}
	if len(opt.TagIDs) > 0 {
		scopes = append(scopes, tagsOverlap("partner_tag_ids", opt.TagIDs))
	}
	rows, err := repository.FindAll[model.PartnerModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "partner_order ASC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.PartnerRow(m))
	}
	return out, nil
}

func GetPartnerByID(db *gorm.DB, id string) (fiber.Map, error) {
	m, err := repository.FindByID[model.PartnerModel](db, id)
	if err != nil {
		return nil, err
	}
	return dto.PartnerRow(*m), nil
}

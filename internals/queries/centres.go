package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/centres/dto"
	"yayasanku_backend/internals/features/organization/centres/model"
	"yayasanku_backend/internals/repository"
)

type CentreOptions struct {
	Active *bool
	Limit  int
	Offset int
}

func centrePreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Hero").
		Preload("Video").
		Preload("Lead").
		Preload("Tag").
		Preload("Directors", func(d *gorm.DB) *gorm.DB {
			return d.Order("director_order ASC")
		})
}

// GetCentres lists centres with every relation stitched in. A centre with N
// directors still yields exactly one row, with a directors array of length N.
func GetCentres(db *gorm.DB, opt CentreOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	scopes := []repository.Scope{centrePreloads}
	if opt.Active != nil {
		scopes = append(scopes, eq("centre_is_active", *opt.Active))
	}
	rows, err := repository.FindAll[model.CentreModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "centre_order ASC, centre_created_at DESC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.CentreRow(m))
	}
	return out, nil
}

func GetCentreByID(db *gorm.DB, id string) (fiber.Map, error) {
	var m model.CentreModel
	if err := centrePreloads(db).First(&m, "centre_id = ?", id).Error; err != nil {
		return nil, err
	}
	return dto.CentreRow(m), nil
}

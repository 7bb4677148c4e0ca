package queries

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/organization/schools/dto"
	"yayasanku_backend/internals/features/organization/schools/model"
	"yayasanku_backend/internals/repository"
)

// SchoolOptions.Active is deliberately tri-state: the default options carry
// true, an explicit false lists only inactive schools, and nil bypasses the
// active filter entirely (the admin "fetch everything" escape hatch). Do not
// collapse this into a plain bool.
type SchoolOptions struct {
	Active     *bool
	Type       string
	SearchTerm string
	Limit      int
	Offset     int
}

func DefaultSchoolOptions() SchoolOptions {
	active := true
	return SchoolOptions{Active: &active}
}

var schoolSearchCols = []string{"school_name", "school_description", "school_subtitle"}

func schoolPreloads(q *gorm.DB) *gorm.DB {
	return q.Preload("Coordinates").Preload("Tag").Preload("Video")
}

func GetSchools(db *gorm.DB, opt SchoolOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	scopes := []repository.Scope{schoolPreloads}
	if opt.Active != nil {
		scopes = append(scopes, eq("school_is_active", *opt.Active))
	}
	if opt.Type != "" {
		scopes = append(scopes, eq("school_type", opt.Type))
	}
	if s := strings.TrimSpace(opt.SearchTerm); s != "" {
		scopes = append(scopes, searchAcross(schoolSearchCols, s))
	}
	rows, err := repository.FindAll[model.SchoolModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "school_order ASC, school_created_at DESC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.SchoolRow(m))
	}
	return out, nil
}

func GetSchoolByID(db *gorm.DB, id string) (fiber.Map, error) {
	var m model.SchoolModel
	if err := schoolPreloads(db).First(&m, "school_id = ?", id).Error; err != nil {
		return nil, err
	}
	return dto.SchoolRow(m), nil
}

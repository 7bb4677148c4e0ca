package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/activities/dto"
	"yayasanku_backend/internals/features/home/activities/model"
	"yayasanku_backend/internals/repository"
)

type ActivityOptions struct {
	Active    *bool
	SectionID string
	Limit     int
	Offset    int
}

func GetActivities(db *gorm.DB, opt ActivityOptions) ([]fiber.Map, error) {
	if opt.Limit <= 0 {
		opt.Limit = activeListLimit
	}
	var scopes []repository.Scope
	if opt.Active != nil {
		scopes = append(scopes, eq("activity_is_active", *opt.Active))
	}
	if opt.SectionID != "" {
		scopes = append(scopes, eq("activity_section_id", opt.SectionID))
	}
	rows, err := repository.FindAll[model.ActivityModel](db, repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "activity_order ASC",
		Scopes:  scopes,
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ActivityRow(m))
	}
	return out, nil
}

// GetActivityWithRelations returns one activity with its section, video,
// photo and tag stitched in (null where the reference is unset).
func GetActivityWithRelations(db *gorm.DB, id string) (fiber.Map, error) {
	var m model.ActivityModel
	err := db.
		Preload("Section").
		Preload("Section.Hero").
		Preload("Video").
		Preload("Photo").
		Preload("Tag").
		First(&m, "activity_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return dto.ActivityRow(m), nil
}

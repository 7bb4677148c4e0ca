package queries

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/tags/dto"
	"yayasanku_backend/internals/features/tags/model"
	"yayasanku_backend/internals/repository"
)

func GetTags(db *gorm.DB) ([]fiber.Map, error) {
	rows, err := repository.FindAll[model.TagModel](db, repository.ListOptions{
		OrderBy: "tag_name ASC",
	})
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.TagRow(m))
	}
	return out, nil
}

// TagIndex fetches the full tag list once and returns an id→tag lookup.
func TagIndex(db *gorm.DB) (map[string]model.TagModel, error) {
	rows, err := repository.FindAll[model.TagModel](db, repository.ListOptions{})
	if err != nil {
		return nil, err
	}
	idx := make(map[string]model.TagModel, len(rows))
	for _, t := range rows {
		idx[t.TagID] = t
	}
	return idx, nil
}

// ResolveTags maps stored tag ids through the tag table in memory and drops
// ids that resolve to nothing (tag deleted since). This join stays out of
// SQL: several entities still mix legacy tag-name arrays with tag-id arrays
// and only this step reconciles them.
func ResolveTags(db *gorm.DB, ids []string) ([]fiber.Map, error) {
	if len(ids) == 0 {
		return []fiber.Map{}, nil
	}
	idx, err := TagIndex(db)
	if err != nil {
		return nil, err
	}
	out := make([]fiber.Map, 0, len(ids))
	for _, id := range ids {
		if t, ok := idx[id]; ok {
			out = append(out, dto.TagRow(t))
		}
	}
	return out, nil
}

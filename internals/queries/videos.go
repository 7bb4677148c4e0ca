package queries

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/videos/dto"
	"yayasanku_backend/internals/features/contents/videos/model"
	"yayasanku_backend/internals/repository"
)

type VideoOptions struct {
	Status     string
	Featured   *bool
	Source     string
	SearchTerm string
	Limit      int
	Offset     int
}

var videoSearchCols = []string{
	"video_title", "video_description", "video_excerpt", "video_author",
}

func GetVideos(db *gorm.DB, opt VideoOptions) ([]fiber.Map, int64, error) {
	if opt.Limit <= 0 {
		opt.Limit = 10
	}
	var scopes []repository.Scope
	if opt.Status != "" {
		scopes = append(scopes, eq("video_status", opt.Status))
	}
	if opt.Featured != nil {
		scopes = append(scopes, eq("video_is_featured", *opt.Featured))
	}
	if opt.Source != "" {
		scopes = append(scopes, eq("video_source", opt.Source))
	}
	if s := strings.TrimSpace(opt.SearchTerm); s != "" {
		scopes = append(scopes, searchAcross(videoSearchCols, s))
	}

	lo := repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "video_created_at DESC",
		Scopes:  scopes,
	}
	rows, err := repository.FindAll[model.VideoModel](db, lo)
	if err != nil {
		return nil, 0, err
	}
	total, err := repository.Count[model.VideoModel](db, lo)
	if err != nil {
		return nil, 0, err
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.VideoRow(m))
	}
	return out, total, nil
}

func GetVideoByID(db *gorm.DB, id string) (fiber.Map, error) {
	m, err := repository.FindByID[model.VideoModel](db, id)
	if err != nil {
		return nil, err
	}
	return dto.VideoRow(*m), nil
}

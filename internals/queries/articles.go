package queries

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/articles/dto"
	"yayasanku_backend/internals/features/contents/articles/model"
	"yayasanku_backend/internals/repository"
)

type ArticleOptions struct {
	Status     string
	Featured   *bool
	SearchTerm string
	Limit      int
	Offset     int
}

var articleSearchCols = []string{
	"article_title", "article_content", "article_excerpt", "article_author",
}

// GetArticles lists articles most-recent-first, with total for paging.
func GetArticles(db *gorm.DB, opt ArticleOptions) ([]fiber.Map, int64, error) {
	if opt.Limit <= 0 {
		opt.Limit = 10
	}
	var scopes []repository.Scope
	if opt.Status != "" {
		scopes = append(scopes, eq("article_status", opt.Status))
	}
	if opt.Featured != nil {
		scopes = append(scopes, eq("article_is_featured", *opt.Featured))
	}
	if s := strings.TrimSpace(opt.SearchTerm); s != "" {
		scopes = append(scopes, searchAcross(articleSearchCols, s))
	}

	lo := repository.ListOptions{
		Limit:   opt.Limit,
		Offset:  opt.Offset,
		OrderBy: "article_created_at DESC",
		Scopes:  scopes,
	}
	rows, err := repository.FindAll[model.ArticleModel](db, lo)
	if err != nil {
		return nil, 0, err
	}
	total, err := repository.Count[model.ArticleModel](db, lo)
	if err != nil {
		return nil, 0, err
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ArticleRow(m))
	}
	return out, total, nil
}

func GetArticleByID(db *gorm.DB, id string) (fiber.Map, error) {
	m, err := repository.FindByID[model.ArticleModel](db, id)
	if err != nil {
		return nil, err
	}
	return dto.ArticleRow(*m), nil
}

package queries

import (
	"testing"
	"time"

	"gorm.io/gorm"

	articleModel "yayasanku_backend/internals/features/contents/articles/model"
	database "yayasanku_backend/internals/databases"
	"yayasanku_backend/internals/repository"
)

func openArticlesDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&articleModel.ArticleModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedArticle(t *testing.T, db *gorm.DB, title, status string, featured bool, createdAt time.Time) articleModel.ArticleModel {
	t.Helper()
	m := articleModel.ArticleModel{
		ArticleTitle:      title,
		ArticleContent:    "content of " + title,
		ArticleStatus:     status,
		ArticleIsFeatured: featured,
		ArticleCreatedAt:  createdAt,
	}
	if err := repository.Create(db, &m); err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	return m
}

func TestGetArticlesFiltersAreConjunctive(t *testing.T) {
	db := openArticlesDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedArticle(t, db, "pub-featured", articleModel.ArticleStatusPublished, true, base)
	seedArticle(t, db, "pub-plain", articleModel.ArticleStatusPublished, false, base.Add(time.Hour))
	seedArticle(t, db, "draft-featured", articleModel.ArticleStatusDraft, true, base.Add(2*time.Hour))

	featured := true
	rows, total, err := GetArticles(db, ArticleOptions{
		Status:   articleModel.ArticleStatusPublished,
		Featured: &featured,
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("total=%d len=%d, want 1/1", total, len(rows))
	}
	if rows[0]["title"] != "pub-featured" {
		t.Fatalf("got %v, want pub-featured", rows[0]["title"])
	}
}

func TestGetArticlesAddingFilterNeverAddsRows(t *testing.T) {
	db := openArticlesDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedArticle(t, db, "a", articleModel.ArticleStatusPublished, true, base)
	seedArticle(t, db, "b", articleModel.ArticleStatusPublished, false, base.Add(time.Minute))
	seedArticle(t, db, "c", articleModel.ArticleStatusDraft, false, base.Add(2*time.Minute))

	_, loose, err := GetArticles(db, ArticleOptions{Status: articleModel.ArticleStatusPublished})
	if err != nil {
		t.Fatalf("loose: %v", err)
	}
	featured := true
	_, tight, err := GetArticles(db, ArticleOptions{
		Status:   articleModel.ArticleStatusPublished,
		Featured: &featured,
	})
	if err != nil {
		t.Fatalf("tight: %v", err)
	}
	if tight > loose {
		t.Fatalf("narrower filter returned more rows: %d > %d", tight, loose)
	}
}

func TestGetArticlesOrderNewestFirst(t *testing.T) {
	db := openArticlesDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedArticle(t, db, "old", articleModel.ArticleStatusPublished, false, base)
	seedArticle(t, db, "mid", articleModel.ArticleStatusPublished, false, base.Add(time.Hour))
	seedArticle(t, db, "new", articleModel.ArticleStatusPublished, false, base.Add(2*time.Hour))

	rows, _, err := GetArticles(db, ArticleOptions{})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"new", "mid", "old"}
	if len(rows) != len(want) {
		t.Fatalf("len = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i]["title"] != w {
			t.Fatalf("rows[%d] = %v, want %s", i, rows[i]["title"], w)
		}
	}
}

func TestGetArticlesSearchMatchesTitleOrContent(t *testing.T) {
	db := openArticlesDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedArticle(t, db, "water wells", articleModel.ArticleStatusPublished, false, base)
	seedArticle(t, db, "schooling", articleModel.ArticleStatusPublished, false, base.Add(time.Minute))

	rows, total, err := GetArticles(db, ArticleOptions{SearchTerm: "wells"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0]["title"] != "water wells" {
		t.Fatalf("search mismatch: total=%d rows=%v", total, rows)
	}
}

func TestGetArticlesPagingAndTotal(t *testing.T) {
	db := openArticlesDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		seedArticle(t, db, "a", articleModel.ArticleStatusPublished, false, base.Add(time.Duration(i)*time.Minute))
	}

	rows, total, err := GetArticles(db, ArticleOptions{})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// default page size is 10, total reports the full match count
	if len(rows) != 10 {
		t.Fatalf("len = %d, want 10", len(rows))
	}
	if total != 15 {
		t.Fatalf("total = %d, want 15", total)
	}

	rows2, _, err := GetArticles(db, ArticleOptions{Limit: 10, Offset: 10})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(rows2) != 5 {
		t.Fatalf("page 2 len = %d, want 5", len(rows2))
	}
}

func TestArticleRowCarriesBothKeyShapes(t *testing.T) {
	db := openArticlesDB(t)
	m := seedArticle(t, db, "dual", articleModel.ArticleStatusPublished, false, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	row, err := GetArticleByID(db, m.ArticleID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row["created_at"] == nil || row["createdAt"] == nil {
		t.Fatalf("missing dual keys: %v", row)
	}
	if row["created_at"] != row["createdAt"] {
		t.Fatal("snake and camel values differ")
	}
}

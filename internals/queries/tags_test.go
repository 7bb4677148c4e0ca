package queries

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	tagModel "yayasanku_backend/internals/features/tags/model"
	database "yayasanku_backend/internals/databases"
	"yayasanku_backend/internals/repository"
)

func openTagsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&tagModel.TagModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTag(t *testing.T, db *gorm.DB, name string) tagModel.TagModel {
	t.Helper()
	m := tagModel.TagModel{TagName: name}
	if err := repository.Create(db, &m); err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	return m
}

func TestGetTagsSortedByName(t *testing.T) {
	db := openTagsDB(t)
	seedTag(t, db, "water")
	seedTag(t, db, "education")
	seedTag(t, db, "health")

	rows, err := GetTags(db)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"education", "health", "water"}
	if len(rows) != len(want) {
		t.Fatalf("len = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i]["name"] != w {
			t.Fatalf("rows[%d] = %v, want %s", i, rows[i]["name"], w)
		}
	}
}

// Stored tag-id arrays can reference tags that were deleted later.
// Resolution silently drops those; the row must not fail or carry holes.
func TestResolveTagsDropsUnresolvable(t *testing.T) {
	db := openTagsDB(t)
	a := seedTag(t, db, "alive")
	b := seedTag(t, db, "doomed")

	if err := repository.Delete[tagModel.TagModel](db, b.TagID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	resolved, err := ResolveTags(db, []string{a.TagID, b.TagID, uuid.NewString()})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("len = %d, want 1", len(resolved))
	}
	if resolved[0]["name"] != "alive" {
		t.Fatalf("resolved = %v, want alive", resolved[0])
	}
}

func TestResolveTagsEmptyInput(t *testing.T) {
	db := openTagsDB(t)

	resolved, err := ResolveTags(db, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("len = %d, want 0", len(resolved))
	}
}

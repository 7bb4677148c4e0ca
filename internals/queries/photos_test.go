package queries

import (
	"testing"
	"time"

	"gorm.io/gorm"

	photoModel "yayasanku_backend/internals/features/contents/photos/model"
	database "yayasanku_backend/internals/databases"
	"yayasanku_backend/internals/repository"
)

func openPhotosDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&photoModel.PhotoModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPhoto(t *testing.T, db *gorm.DB, title string, tagIDs []string, createdAt time.Time) photoModel.PhotoModel {
	t.Helper()
	m := photoModel.PhotoModel{
		PhotoTitle:     title,
		PhotoImageURL:  "https://cdn.example.com/" + title + ".webp",
		PhotoStatus:    photoModel.PhotoStatusPublished,
		PhotoTagIDs:    tagIDs,
		PhotoCreatedAt: createdAt,
	}
	if err := repository.Create(db, &m); err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	return m
}

// The tag filter matches on intersection: one shared tag id is enough,
// a photo with none of the requested tags stays out.
func TestGetPhotosTagOverlap(t *testing.T) {
	db := openPhotosDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedPhoto(t, db, "both", []string{"tag-a", "tag-b"}, base)
	seedPhoto(t, db, "only-a", []string{"tag-a"}, base.Add(time.Minute))
	seedPhoto(t, db, "only-c", []string{"tag-c"}, base.Add(2*time.Minute))
	seedPhoto(t, db, "untagged", nil, base.Add(3*time.Minute))

	rows, total, err := GetPhotos(db, PhotoOptions{TagIDs: []string{"tag-a", "tag-b"}})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	titles := map[string]bool{}
	for _, r := range rows {
		titles[r["title"].(string)] = true
	}
	if !titles["both"] || !titles["only-a"] {
		t.Fatalf("wrong rows matched: %v", titles)
	}
	if titles["only-c"] || titles["untagged"] {
		t.Fatalf("non-overlapping rows matched: %v", titles)
	}
}

func TestGetPhotosCategoryFilter(t *testing.T) {
	db := openPhotosDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := seedPhoto(t, db, "event", nil, base)
	a.PhotoCategory = "Events"
	if err := repository.Save(db, &a); err != nil {
		t.Fatalf("save: %v", err)
	}
	seedPhoto(t, db, "general", nil, base.Add(time.Minute))

	rows, total, err := GetPhotos(db, PhotoOptions{Category: "Events"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0]["title"] != "event" {
		t.Fatalf("category filter mismatch: total=%d rows=%v", total, rows)
	}
}

package queries

import (
	"testing"

	"gorm.io/gorm"

	libraryModel "yayasanku_backend/internals/features/contents/library/model"
	database "yayasanku_backend/internals/databases"
	"yayasanku_backend/internals/repository"
)

func openLibraryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&libraryModel.LibraryItemModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestIncrementLibraryDownloads(t *testing.T) {
	db := openLibraryDB(t)

	item := libraryModel.LibraryItemModel{
		LibraryItemTitle:   "Annual Report",
		LibraryItemFileURL: "https://cdn.example.com/report.pdf",
		LibraryItemStatus:  libraryModel.LibraryItemStatusPublished,
	}
	if err := repository.Create(db, &item); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := IncrementLibraryDownloads(db, item.LibraryItemID); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}

	row, err := GetLibraryItemByID(db, item.LibraryItemID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := row["downloads"]; got != 3 {
		t.Fatalf("downloads = %v, want 3", got)
	}
}

func TestIncrementLibraryDownloadsMissingIDIsNoop(t *testing.T) {
	db := openLibraryDB(t)

	if err := IncrementLibraryDownloads(db, "no-such-id"); err != nil {
		t.Fatalf("increment on missing id errored: %v", err)
	}
}

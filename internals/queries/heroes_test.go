package queries

import (
	"testing"

	"gorm.io/gorm"

	heroModel "yayasanku_backend/internals/features/home/heroes/model"
	database "yayasanku_backend/internals/databases"
	"yayasanku_backend/internals/repository"
)

func openHeroesDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&heroModel.HeroModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedHero(t *testing.T, db *gorm.DB, title string, order int, active bool) {
	t.Helper()
	m := heroModel.HeroModel{
		HeroTitle:    title,
		HeroImageURL: "https://cdn.example.com/" + title + ".webp",
		HeroOrder:    order,
		HeroIsActive: true,
	}
	if err := repository.Create(db, &m); err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	if !active {
		m.HeroIsActive = false
		if err := repository.Save(db, &m); err != nil {
			t.Fatalf("deactivate %s: %v", title, err)
		}
	}
}

func TestGetHeroesSortOrderAndActiveFilter(t *testing.T) {
	db := openHeroesDB(t)
	seedHero(t, db, "third", 3, true)
	seedHero(t, db, "first", 1, true)
	seedHero(t, db, "hidden", 2, false)

	active := true
	rows, err := GetHeroes(db, HeroOptions{Active: &active})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"first", "third"}
	if len(rows) != len(want) {
		t.Fatalf("len = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i]["title"] != w {
			t.Fatalf("rows[%d] = %v, want %s", i, rows[i]["title"], w)
		}
	}
}

func TestGetHeroesNilActiveReturnsAll(t *testing.T) {
	db := openHeroesDB(t)
	seedHero(t, db, "shown", 1, true)
	seedHero(t, db, "hidden", 2, false)

	rows, err := GetHeroes(db, HeroOptions{})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
}

package queries

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	centreModel "yayasanku_backend/internals/features/organization/centres/model"
	directorModel "yayasanku_backend/internals/features/organization/directors/model"
	database "yayasanku_backend/internals/databases"
	"yayasanku_backend/internals/repository"
)

func openCentresDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&centreModel.CentreModel{}, &directorModel.DirectorModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// A centre with N directors folds into exactly one row whose directors
// array has length N, not N duplicated rows.
func TestGetCentresFoldsDirectors(t *testing.T) {
	db := openCentresDB(t)

	centre := centreModel.CentreModel{CentreName: "Main Centre", CentreIsActive: true}
	if err := repository.Create(db, &centre); err != nil {
		t.Fatalf("create centre: %v", err)
	}

	for i, name := range []string{"second", "third", "first"} {
		d := directorModel.DirectorModel{
			DirectorName:     name,
			DirectorOrder:    []int{2, 3, 1}[i],
			DirectorCentreID: &centre.CentreID,
			DirectorIsActive: true,
		}
		if err := repository.Create(db, &d); err != nil {
			t.Fatalf("create director %s: %v", name, err)
		}
	}

	rows, err := GetCentres(db, CentreOptions{})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1 folded row", len(rows))
	}

	directors, ok := rows[0]["directors"].([]fiber.Map)
	if !ok {
		t.Fatalf("directors is %T, want []fiber.Map", rows[0]["directors"])
	}
	if len(directors) != 3 {
		t.Fatalf("directors len = %d, want 3", len(directors))
	}
	// stitched in director_order ASC
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if directors[i]["name"] != w {
			t.Fatalf("directors[%d] = %v, want %s", i, directors[i]["name"], w)
		}
	}
}

func TestGetCentresEmptyDirectorsIsArrayNotNull(t *testing.T) {
	db := openCentresDB(t)

	centre := centreModel.CentreModel{CentreName: "Lonely", CentreIsActive: true}
	if err := repository.Create(db, &centre); err != nil {
		t.Fatalf("create: %v", err)
	}

	row, err := GetCentreByID(db, centre.CentreID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	directors, ok := row["directors"].([]fiber.Map)
	if !ok {
		t.Fatalf("directors is %T, want []fiber.Map", row["directors"])
	}
	if len(directors) != 0 {
		t.Fatalf("directors len = %d, want 0", len(directors))
	}
	// absent object relations come out as explicit nulls
	if v, present := row["hero"]; !present || v != nil {
		t.Fatalf("hero = %v (present=%v), want explicit null", v, present)
	}
}

func TestGetCentresOrderWithCreatedAtTiebreak(t *testing.T) {
	db := openCentresDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(name string, order int, createdAt time.Time) {
		m := centreModel.CentreModel{
			CentreName:      name,
			CentreOrder:     order,
			CentreIsActive:  true,
			CentreCreatedAt: createdAt,
		}
		if err := repository.Create(db, &m); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	seed("b-old", 1, base)
	seed("b-new", 1, base.Add(time.Hour))
	seed("a", 0, base)

	rows, err := GetCentres(db, CentreOptions{})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"a", "b-new", "b-old"}
	if len(rows) != len(want) {
		t.Fatalf("len = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i]["name"] != w {
			t.Fatalf("rows[%d] = %v, want %s", i, rows[i]["name"], w)
		}
	}
}

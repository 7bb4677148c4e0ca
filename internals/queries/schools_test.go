package queries

import (
	"testing"

	"gorm.io/gorm"

	schoolModel "yayasanku_backend/internals/features/organization/schools/model"
	database "yayasanku_backend/internals/databases"
	"yayasanku_backend/internals/repository"
)

func openSchoolsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&schoolModel.SchoolModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedSchool(t *testing.T, db *gorm.DB, name string, active bool) schoolModel.SchoolModel {
	t.Helper()
	m := schoolModel.SchoolModel{
		SchoolName:     name,
		SchoolType:     schoolModel.SchoolTypeOther,
		SchoolIsActive: true,
	}
	if err := repository.Create(db, &m); err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	if !active {
		// flip after create so the column default does not swallow false
		m.SchoolIsActive = false
		if err := repository.Save(db, &m); err != nil {
			t.Fatalf("deactivate %s: %v", name, err)
		}
	}
	return m
}

func TestGetSchoolsDefaultHidesInactive(t *testing.T) {
	db := openSchoolsDB(t)
	seedSchool(t, db, "open", true)
	seedSchool(t, db, "closed", false)

	rows, err := GetSchools(db, DefaultSchoolOptions())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "open" {
		t.Fatalf("default listing wrong: %v", rows)
	}
}

// Active=nil is the admin bypass: no filter, inactive rows included.
func TestGetSchoolsNilActiveBypassesFilter(t *testing.T) {
	db := openSchoolsDB(t)
	seedSchool(t, db, "open", true)
	seedSchool(t, db, "closed", false)

	rows, err := GetSchools(db, SchoolOptions{Active: nil})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2 (bypass)", len(rows))
	}
}

func TestGetSchoolsExplicitFalseListsOnlyInactive(t *testing.T) {
	db := openSchoolsDB(t)
	seedSchool(t, db, "open", true)
	seedSchool(t, db, "closed", false)

	inactive := false
	rows, err := GetSchools(db, SchoolOptions{Active: &inactive})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "closed" {
		t.Fatalf("explicit false wrong: %v", rows)
	}
}

func TestGetSchoolsTypeFilter(t *testing.T) {
	db := openSchoolsDB(t)

	m := seedSchool(t, db, "tech", true)
	m.SchoolType = schoolModel.SchoolTypeTechnical
	if err := repository.Save(db, &m); err != nil {
		t.Fatalf("save: %v", err)
	}
	seedSchool(t, db, "other", true)

	opt := DefaultSchoolOptions()
	opt.Type = schoolModel.SchoolTypeTechnical
	rows, err := GetSchools(db, opt)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "tech" {
		t.Fatalf("type filter wrong: %v", rows)
	}
}

package queries

import (
	"testing"

	"gorm.io/gorm"

	database "yayasanku_backend/internals/databases"
	partnerModel "yayasanku_backend/internals/features/home/partners/model"
	"yayasanku_backend/internals/repository"
)

func openPartnersDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&partnerModel.PartnerModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPartner(t *testing.T, db *gorm.DB, title string, order int, tagIDs []string) partnerModel.PartnerModel {
	t.Helper()
	m := partnerModel.PartnerModel{
		PartnerTitle:    title,
		PartnerOrder:    order,
		PartnerIsActive: true,
		PartnerTagIDs:   tagIDs,
	}
	if err := repository.Create(db, &m); err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	return m
}

// Partners share the intersection semantics of the photo tag filter:
// one common tag id keeps the row, disjoint sets drop it.
func TestGetPartnersTagOverlap(t *testing.T) {
	db := openPartnersDB(t)

	seedPartner(t, db, "both", 1, []string{"tag-a", "tag-b"})
	seedPartner(t, db, "only-b", 2, []string{"tag-b"})
	seedPartner(t, db, "only-c", 3, []string{"tag-c"})
	seedPartner(t, db, "untagged", 4, nil)

	rows, err := GetPartners(db, PartnerOptions{TagIDs: []string{"tag-a", "tag-b"}})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	// partner_order ASC keeps the seed order stable.
	if rows[0]["title"] != "both" || rows[1]["title"] != "only-b" {
		t.Fatalf("wrong rows matched: %v, %v", rows[0]["title"], rows[1]["title"])
	}
}

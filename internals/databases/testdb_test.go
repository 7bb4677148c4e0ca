package database

import (
	"testing"

	articleModel "yayasanku_backend/internals/features/contents/articles/model"
	libraryModel "yayasanku_backend/internals/features/contents/library/model"
	photoModel "yayasanku_backend/internals/features/contents/photos/model"
	videoModel "yayasanku_backend/internals/features/contents/videos/model"
	activityModel "yayasanku_backend/internals/features/home/activities/model"
	heroModel "yayasanku_backend/internals/features/home/heroes/model"
	impactModel "yayasanku_backend/internals/features/home/impacts/model"
	partnerModel "yayasanku_backend/internals/features/home/partners/model"
	sectionModel "yayasanku_backend/internals/features/home/sections/model"
	centreModel "yayasanku_backend/internals/features/organization/centres/model"
	coordinatesModel "yayasanku_backend/internals/features/organization/coordinates/model"
	directorModel "yayasanku_backend/internals/features/organization/directors/model"
	schoolModel "yayasanku_backend/internals/features/organization/schools/model"
	tagModel "yayasanku_backend/internals/features/tags/model"
	userModel "yayasanku_backend/internals/features/users/model"
)

// Every schema must migrate cleanly on the sqlite dialector, since the
// package test suites all go through OpenTest. Primary keys are assigned
// in BeforeCreate rather than by a database default, so no column DDL
// may depend on a Postgres-only function.
func TestOpenTestMigratesAllSchemas(t *testing.T) {
	db, err := OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&articleModel.ArticleModel{},
		&videoModel.VideoModel{},
		&photoModel.PhotoModel{},
		&libraryModel.LibraryItemModel{},
		&tagModel.TagModel{},
		&heroModel.HeroModel{},
		&impactModel.ImpactModel{},
		&sectionModel.SectionModel{},
		&activityModel.ActivityModel{},
		&partnerModel.PartnerModel{},
		&coordinatesModel.CoordinatesModel{},
		&directorModel.DirectorModel{},
		&centreModel.CentreModel{},
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tag := tagModel.TagModel{TagName: "migrate-check"}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if tag.TagID == "" {
		t.Fatalf("expected BeforeCreate to assign a primary key")
	}
}

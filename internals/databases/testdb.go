package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// OpenTest opens a private in-memory sqlite database for package tests.
// Callers are expected to AutoMigrate the models they exercise.
func OpenTest() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open test db: %w", err)
	}
	return db, nil
}

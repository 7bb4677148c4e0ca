// Package seeds provisions the rows a fresh deployment needs before the
// admin panel can be used: the first admin account and the starter tags.
// Runs on boot when SEED_ON_BOOT=true; every step is idempotent.
package seeds

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yayasanku_backend/internals/configs"
	tagModel "yayasanku_backend/internals/features/tags/model"
	userModel "yayasanku_backend/internals/features/users/model"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var defaultTags = []string{"Education", "Health", "Water", "Community"}

func Run(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedTags(db)
}

func seedAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("ADMIN_EMAIL")))
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ seeds: ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	if _, err := queries.GetUserByEmail(db, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := userModel.UserModel{UserEmail: email, UserPasswordHash: string(hash)}
	if err := repository.Create(db, &u); err != nil {
		return err
	}
	log.Printf("✅ seeds: admin %s created", email)
	return nil
}

func seedTags(db *gorm.DB) error {
	for _, name := range defaultTags {
		var existing tagModel.TagModel
		err := db.Where("tag_name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repository.Create(db, &tagModel.TagModel{TagName: name}); err != nil {
			return err
		}
	}
	return nil
}

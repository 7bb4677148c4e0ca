package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "yayasanku_backend/internals/features/users/controller"
	"yayasanku_backend/internals/middlewares"
)

// AuthRoutes mounts the unauthenticated endpoints; login and register get
// their own tighter rate limits.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtl.NewAuthController(db)

	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/logout", ctrl.Logout)
}

// AuthProtectedRoutes mounts under the JWT-guarded group.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtl.NewAuthController(db)

	r.Get("/me", ctrl.Me)
}

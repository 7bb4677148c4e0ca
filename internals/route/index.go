package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/configs"
	articleRoutes "yayasanku_backend/internals/features/contents/articles/route"
	libraryRoutes "yayasanku_backend/internals/features/contents/library/route"
	photoRoutes "yayasanku_backend/internals/features/contents/photos/route"
	videoRoutes "yayasanku_backend/internals/features/contents/videos/route"
	activityRoutes "yayasanku_backend/internals/features/home/activities/route"
	heroRoutes "yayasanku_backend/internals/features/home/heroes/route"
	impactRoutes "yayasanku_backend/internals/features/home/impacts/route"
	partnerRoutes "yayasanku_backend/internals/features/home/partners/route"
	sectionRoutes "yayasanku_backend/internals/features/home/sections/route"
	centreRoutes "yayasanku_backend/internals/features/organization/centres/route"
	coordRoutes "yayasanku_backend/internals/features/organization/coordinates/route"
	directorRoutes "yayasanku_backend/internals/features/organization/directors/route"
	schoolRoutes "yayasanku_backend/internals/features/organization/schools/route"
	tagRoutes "yayasanku_backend/internals/features/tags/route"
	authRoutes "yayasanku_backend/internals/features/users/route"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	authMW "yayasanku_backend/internals/middlewares/auth"
)

var startTime = time.Now()

// SetupRoutes wires the whole API surface:
//
//	/api/public : the website reads, no token
//	/api/a      : the admin surface, JWT-guarded
//	/api/auth   : login / register / logout
func SetupRoutes(app *fiber.App, db *gorm.DB, oss *ossHelper.OSSService) {
	baseRoutes(app, db)

	api := app.Group("/api")

	public := api.Group("/public")
	articleRoutes.ArticlePublicRoutes(public, db)
	videoRoutes.VideoPublicRoutes(public, db)
	photoRoutes.PhotoPublicRoutes(public, db)
	libraryRoutes.LibraryPublicRoutes(public, db)
	tagRoutes.TagPublicRoutes(public, db)
	heroRoutes.HeroPublicRoutes(public, db)
	impactRoutes.ImpactPublicRoutes(public, db)
	sectionRoutes.SectionPublicRoutes(public, db)
	activityRoutes.ActivityPublicRoutes(public, db)
	partnerRoutes.PartnerPublicRoutes(public, db)
	coordRoutes.CoordinatesPublicRoutes(public, db)
	directorRoutes.DirectorPublicRoutes(public, db)
	centreRoutes.CentrePublicRoutes(public, db)
	schoolRoutes.SchoolPublicRoutes(public, db)

	auth := api.Group("/auth")
	authRoutes.AuthRoutes(auth, db)

	admin := api.Group("/a", authMW.AuthJWT(authMW.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	authRoutes.AuthProtectedRoutes(admin, db)
	articleRoutes.ArticleAdminRoutes(admin, db, oss)
	videoRoutes.VideoAdminRoutes(admin, db, oss)
	photoRoutes.PhotoAdminRoutes(admin, db, oss)
	libraryRoutes.LibraryAdminRoutes(admin, db, oss)
	tagRoutes.TagAdminRoutes(admin, db)
	heroRoutes.HeroAdminRoutes(admin, db, oss)
	impactRoutes.ImpactAdminRoutes(admin, db)
	sectionRoutes.SectionAdminRoutes(admin, db, oss)
	activityRoutes.ActivityAdminRoutes(admin, db)
	partnerRoutes.PartnerAdminRoutes(admin, db, oss)
	coordRoutes.CoordinatesAdminRoutes(admin, db)
	directorRoutes.DirectorAdminRoutes(admin, db, oss)
	centreRoutes.CentreAdminRoutes(admin, db, oss)
	schoolRoutes.SchoolAdminRoutes(admin, db, oss)
}

func baseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Yayasanku API is up 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}

// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	CompetitionRoutes "peluangku_backend/internals/features/listings/competitions/route"
	JobRoutes "peluangku_backend/internals/features/listings/jobs/route"
	ScholarshipRoutes "peluangku_backend/internals/features/listings/scholarships/route"
	StatsRoutes "peluangku_backend/internals/features/listings/stats/route"
	middlewares "peluangku_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	// Read-only, visibility rule aktif di semua handler
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	CompetitionRoutes.CompetitionPublicRoutes(public, db)
	JobRoutes.JobPublicRoutes(public, db)
	ScholarshipRoutes.ScholarshipPublicRoutes(public, db)
	StatsRoutes.StatsPublicRoutes(public, db)

	// ===================== ADMIN =====================
	// Tanpa auth (belum ada di produk ini) — hanya rate limit lebih ketat
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", middlewares.AdminRateLimiter())

	CompetitionRoutes.CompetitionAdminRoutes(admin, db)
	JobRoutes.JobAdminRoutes(admin, db)
	ScholarshipRoutes.ScholarshipAdminRoutes(admin, db)
	StatsRoutes.StatsAdminRoutes(admin, db)
}

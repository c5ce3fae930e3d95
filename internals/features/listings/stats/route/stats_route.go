// file: internals/features/listings/stats/route/stats_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "peluangku_backend/internals/features/listings/stats/controller"
	"peluangku_backend/internals/helpers/timeclock"
)

// ✅ Statistik dashboard untuk landing page
func StatsPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db, timeclock.Real{})

	api.Get("/dashboard/stats", ctrl.GetDashboardStats)
}

// ✅ Maintenance (destruktif) → grup admin
func StatsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db, timeclock.Real{})

	api.Post("/maintenance/cleanup", ctrl.CleanupExpired)
}

// file: internals/features/listings/competitions/route/competition_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "peluangku_backend/internals/features/listings/competitions/controller"
	"peluangku_backend/internals/helpers/timeclock"
)

// ✅ Route publik (read-only, visibility rule aktif)
func CompetitionPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCompetitionController(db, timeclock.Real{})

	r := api.Group("/competitions")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}

// ✅ Route admin (tulis)
func CompetitionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCompetitionController(db, timeclock.Real{})

	r := api.Group("/competitions")
	r.Post("/", ctrl.Create)
	r.Patch("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

// file: internals/features/listings/scholarships/route/scholarship_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "peluangku_backend/internals/features/listings/scholarships/controller"
	"peluangku_backend/internals/helpers/timeclock"
)

// ✅ Route publik (read-only, visibility rule aktif)
func ScholarshipPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScholarshipController(db, timeclock.Real{})

	r := api.Group("/scholarships")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}

// ✅ Route admin (tulis)
func ScholarshipAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScholarshipController(db, timeclock.Real{})

	r := api.Group("/scholarships")
	r.Post("/", ctrl.Create)
	r.Patch("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

// file: internals/features/listings/jobs/route/job_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "peluangku_backend/internals/features/listings/jobs/controller"
	"peluangku_backend/internals/helpers/timeclock"
)

// ✅ Route publik (read-only, visibility rule aktif)
func JobPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJobController(db, timeclock.Real{})

	r := api.Group("/jobs")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}

// ✅ Route admin (tulis)
func JobAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJobController(db, timeclock.Real{})

	r := api.Group("/jobs")
	r.Post("/", ctrl.Create)
	r.Patch("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

// file: internals/features/listings/stats/controller/stats_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"peluangku_backend/internals/features/listings/lifecycle"
	statsDTO "peluangku_backend/internals/features/listings/stats/dto"
	helper "peluangku_backend/internals/helpers"
	"peluangku_backend/internals/helpers/timeclock"
)

type StatsController struct {
	DB    *gorm.DB
	Clock timeclock.Clock
}

func NewStatsController(db *gorm.DB, clock timeclock.Clock) *StatsController {
	if clock == nil {
		clock = timeclock.Real{}
	}
	return &StatsController{DB: db, Clock: clock}
}

/* ================= Handlers ================= */

// GET /api/public/dashboard/stats
func (h *StatsController) GetDashboardStats(c *fiber.Ctx) error {
	counts, err := lifecycle.CountForDashboard(h.DB, h.Clock.Now())
	if err != nil {
		log.Printf("[ERROR] dashboard stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "OK", statsDTO.NewDashboardStatsResponse(counts))
}

// POST /api/a/maintenance/cleanup
//
// Dipanggil on-demand (manual atau scheduler eksternal). Tidak ada timer
// internal: endpoint ini satu-satunya pintu penghapusan massal.
func (h *StatsController) CleanupExpired(c *fiber.Ctx) error {
	now := h.Clock.Now()
	deleted, total, err := lifecycle.SweepExpired(h.DB, now)
	if err != nil {
		log.Printf("[ERROR] cleanup sweep: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Cleanup gagal, sebagian tabel mungkin sudah tersapu")
	}

	log.Printf("[CLEANUP] expired rows deleted: total=%d detail=%v", total, deleted)
	return helper.JsonOK(c, "Cleanup selesai", statsDTO.NewCleanupResultResponse(deleted, total))
}

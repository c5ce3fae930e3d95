// file: internals/features/listings/competitions/controller/competition_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	compDTO "peluangku_backend/internals/features/listings/competitions/dto"
	compModel "peluangku_backend/internals/features/listings/competitions/model"
	"peluangku_backend/internals/features/listings/lifecycle"
	helper "peluangku_backend/internals/helpers"
	"peluangku_backend/internals/helpers/timeclock"
)

type CompetitionController struct {
	DB    *gorm.DB
	Clock timeclock.Clock
}

func NewCompetitionController(db *gorm.DB, clock timeclock.Clock) *CompetitionController {
	if clock == nil {
		clock = timeclock.Real{}
	}
	return &CompetitionController{DB: db, Clock: clock}
}

var validateCompetition = validator.New()

/* ================= Helpers ================= */

func parseID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || n <= 0 {
		return 0, errors.New("id harus bilangan bulat positif")
	}
	return uint(n), nil
}

/* ================= Handlers ================= */

// POST /api/a/competitions
func (h *CompetitionController) Create(c *fiber.Ctx) error {
	var req compDTO.CreateCompetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateCompetition.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// Tidak ada cek visibility di create: deadline yang sudah lewat tetap boleh
	// disimpan, hanya tidak akan muncul di read path dan akan kena sweep.
	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create competition: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lomba")
	}

	return helper.JsonCreated(c, "Lomba berhasil dibuat", compDTO.NewCompetitionResponse(m))
}

// GET /api/public/competitions/:id
func (h *CompetitionController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Expired dan tidak-pernah-ada sama-sama 404: visibility memutus akses
	// sebelum sweep sempat menghapus fisiknya.
	var m compModel.CompetitionModel
	err = h.DB.
		Scopes(lifecycle.Visible(compModel.DeadlineColumn, h.Clock.Now())).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lomba tidak ditemukan")
		}
		log.Printf("[ERROR] get competition id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lomba")
	}
	return helper.JsonOK(c, "OK", compDTO.NewCompetitionResponse(&m))
}

// GET /api/public/competitions
func (h *CompetitionController) List(c *fiber.Ctx) error {
	var q compDTO.ListCompetitionQuery
	q.Limit, q.Offset = 20, 0
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	tx := h.DB.Model(&compModel.CompetitionModel{}).
		Scopes(lifecycle.Visible(compModel.DeadlineColumn, h.Clock.Now()))

	// ===== Filters (exact match, AND)
	if q.Category != nil && strings.TrimSpace(*q.Category) != "" {
		tx = tx.Where("category = ?", strings.TrimSpace(*q.Category))
	}
	if q.Place != nil && strings.TrimSpace(*q.Place) != "" {
		tx = tx.Where("place = ?", strings.TrimSpace(*q.Place))
	}
	if q.PriceRegister != nil && strings.TrimSpace(*q.PriceRegister) != "" {
		tx = tx.Where("price_register = ?", strings.TrimSpace(*q.PriceRegister))
	}

	// ===== Count total (sebelum limit/offset)
	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count competitions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data lomba")
	}

	// ===== Pagination guard
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	// ===== Fetch: paling mendesak dulu, id sebagai tiebreak deterministik
	var rows []compModel.CompetitionModel
	if err := tx.
		Order("deadline_registration_date ASC, id ASC").
		Limit(q.Limit).Offset(q.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list competitions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lomba")
	}

	resp := make([]*compDTO.CompetitionResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, compDTO.NewCompetitionResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", resp, helper.Pagination{
		Limit:  q.Limit,
		Offset: q.Offset,
		Total:  total,
		Count:  len(resp),
	})
}

// PATCH /api/a/competitions/:id (partial update)
func (h *CompetitionController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Update tidak pakai visibility: record expired masih bisa diedit
	var existing compModel.CompetitionModel
	if err := h.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lomba tidak ditemukan")
		}
		log.Printf("[ERROR] load competition id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lomba")
	}

	var req compDTO.UpdateCompetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateCompetition.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.GuideBookLink.Set && req.GuideBookLink.Valid {
		if err := validateCompetition.Var(req.GuideBookLink.Value, "url"); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "guide_book_link harus URL valid")
		}
	}
	if req.ImageLink.Set && req.ImageLink.Valid {
		if err := validateCompetition.Var(req.ImageLink.Value, "url"); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "image_link harus URL valid")
		}
	}

	// Payload kosong bukan error: kembalikan record apa adanya tanpa menyentuh updated_at
	if !req.HasChanges() {
		return helper.JsonUpdated(c, "Tidak ada perubahan", compDTO.NewCompetitionResponse(&existing))
	}

	req.ApplyToModel(&existing)
	if err := h.DB.Save(&existing).Error; err != nil {
		log.Printf("[ERROR] update competition id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lomba")
	}

	return helper.JsonUpdated(c, "Lomba diperbarui", compDTO.NewCompetitionResponse(&existing))
}

// DELETE /api/a/competitions/:id
func (h *CompetitionController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Tanpa visibility: record expired tetap bisa dihapus by id
	res := h.DB.Delete(&compModel.CompetitionModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] delete competition id=%d: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lomba")
	}
	if res.RowsAffected == 0 {
		// No-op, bukan error: id tidak ada (atau sudah dihapus sebelumnya)
		return helper.JsonOK(c, "Tidak ada data yang dihapus", fiber.Map{
			"id":      id,
			"deleted": false,
		})
	}

	return helper.JsonDeleted(c, "Lomba dihapus", fiber.Map{
		"id":      id,
		"deleted": true,
	})
}

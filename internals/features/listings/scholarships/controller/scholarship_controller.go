// file: internals/features/listings/scholarships/controller/scholarship_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"peluangku_backend/internals/features/listings/lifecycle"
	schDTO "peluangku_backend/internals/features/listings/scholarships/dto"
	schModel "peluangku_backend/internals/features/listings/scholarships/model"
	helper "peluangku_backend/internals/helpers"
	"peluangku_backend/internals/helpers/timeclock"
)

type ScholarshipController struct {
	DB    *gorm.DB
	Clock timeclock.Clock
}

func NewScholarshipController(db *gorm.DB, clock timeclock.Clock) *ScholarshipController {
	if clock == nil {
		clock = timeclock.Real{}
	}
	return &ScholarshipController{DB: db, Clock: clock}
}

var validateScholarship = validator.New()

func parseID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || n <= 0 {
		return 0, errors.New("id harus bilangan bulat positif")
	}
	return uint(n), nil
}

/* ================= Handlers ================= */

// POST /api/a/scholarships
func (h *ScholarshipController) Create(c *fiber.Ctx) error {
	var req schDTO.CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateScholarship.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create scholarship: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat beasiswa")
	}

	return helper.JsonCreated(c, "Beasiswa berhasil dibuat", schDTO.NewScholarshipResponse(m))
}

// GET /api/public/scholarships/:id
func (h *ScholarshipController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m schModel.ScholarshipModel
	err = h.DB.
		Scopes(lifecycle.Visible(schModel.DeadlineColumn, h.Clock.Now())).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Beasiswa tidak ditemukan")
		}
		log.Printf("[ERROR] get scholarship id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data beasiswa")
	}
	return helper.JsonOK(c, "OK", schDTO.NewScholarshipResponse(&m))
}

// GET /api/public/scholarships
//
// Catatan: sumber lama mengurutkan beasiswa by created_at DESC, beda sendiri
// dari lomba/loker. Di sini dinormalkan ke deadline ASC (paling mendesak dulu).
func (h *ScholarshipController) List(c *fiber.Ctx) error {
	var q schDTO.ListScholarshipQuery
	q.Limit, q.Offset = 20, 0
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	tx := h.DB.Model(&schModel.ScholarshipModel{}).
		Scopes(lifecycle.Visible(schModel.DeadlineColumn, h.Clock.Now()))

	// ===== Filters (exact match, AND)
	if q.Provider != nil && strings.TrimSpace(*q.Provider) != "" {
		tx = tx.Where("provider = ?", strings.TrimSpace(*q.Provider))
	}
	if q.AwardAmount != nil && strings.TrimSpace(*q.AwardAmount) != "" {
		tx = tx.Where("award_amount = ?", strings.TrimSpace(*q.AwardAmount))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count scholarships: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data beasiswa")
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

	var rows []schModel.ScholarshipModel
	if err := tx.
		Order("deadline ASC, id ASC").
		Limit(q.Limit).Offset(q.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list scholarships: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data beasiswa")
	}

	resp := make([]*schDTO.ScholarshipResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, schDTO.NewScholarshipResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", resp, helper.Pagination{
		Limit:  q.Limit,
		Offset: q.Offset,
		Total:  total,
		Count:  len(resp),
	})
}

// PATCH /api/a/scholarships/:id (partial update)
func (h *ScholarshipController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing schModel.ScholarshipModel
	if err := h.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Beasiswa tidak ditemukan")
		}
		log.Printf("[ERROR] load scholarship id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data beasiswa")
	}

	var req schDTO.UpdateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateScholarship.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.ImageLink.Set && req.ImageLink.Valid {
		if err := validateScholarship.Var(req.ImageLink.Value, "url"); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "image_link harus URL valid")
		}
	}

	if !req.HasChanges() {
		return helper.JsonUpdated(c, "Tidak ada perubahan", schDTO.NewScholarshipResponse(&existing))
	}

	req.ApplyToModel(&existing)
	if err := h.DB.Save(&existing).Error; err != nil {
		log.Printf("[ERROR] update scholarship id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui beasiswa")
	}

	return helper.JsonUpdated(c, "Beasiswa diperbarui", schDTO.NewScholarshipResponse(&existing))
}

// DELETE /api/a/scholarships/:id
func (h *ScholarshipController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&schModel.ScholarshipModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] delete scholarship id=%d: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus beasiswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonOK(c, "Tidak ada data yang dihapus", fiber.Map{
			"id":      id,
			"deleted": false,
		})
	}

	return helper.JsonDeleted(c, "Beasiswa dihapus", fiber.Map{
		"id":      id,
		"deleted": true,
	})
}

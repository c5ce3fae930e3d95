// file: internals/features/listings/jobs/controller/job_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jobDTO "peluangku_backend/internals/features/listings/jobs/dto"
	jobModel "peluangku_backend/internals/features/listings/jobs/model"
	"peluangku_backend/internals/features/listings/lifecycle"
	helper "peluangku_backend/internals/helpers"
	"peluangku_backend/internals/helpers/timeclock"
)

type JobController struct {
	DB    *gorm.DB
	Clock timeclock.Clock
}

func NewJobController(db *gorm.DB, clock timeclock.Clock) *JobController {
	if clock == nil {
		clock = timeclock.Real{}
	}
	return &JobController{DB: db, Clock: clock}
}

var validateJob = validator.New()

func parseID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || n <= 0 {
		return 0, errors.New("id harus bilangan bulat positif")
	}
	return uint(n), nil
}

/* ================= Handlers ================= */

// POST /api/a/jobs
func (h *JobController) Create(c *fiber.Ctx) error {
	var req jobDTO.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateJob.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create job: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat loker")
	}

	return helper.JsonCreated(c, "Loker berhasil dibuat", jobDTO.NewJobResponse(m))
}

// GET /api/public/jobs/:id
func (h *JobController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m jobModel.JobModel
	err = h.DB.
		Scopes(lifecycle.Visible(jobModel.DeadlineColumn, h.Clock.Now())).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Loker tidak ditemukan")
		}
		log.Printf("[ERROR] get job id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data loker")
	}
	return helper.JsonOK(c, "OK", jobDTO.NewJobResponse(&m))
}

// GET /api/public/jobs
func (h *JobController) List(c *fiber.Ctx) error {
	var q jobDTO.ListJobQuery
	q.Limit, q.Offset = 20, 0
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	tx := h.DB.Model(&jobModel.JobModel{}).
		Scopes(lifecycle.Visible(jobModel.DeadlineColumn, h.Clock.Now()))

	// ===== Filters (exact match, AND)
	if q.Location != nil && strings.TrimSpace(*q.Location) != "" {
		tx = tx.Where("location = ?", strings.TrimSpace(*q.Location))
	}
	if q.Company != nil && strings.TrimSpace(*q.Company) != "" {
		tx = tx.Where("company = ?", strings.TrimSpace(*q.Company))
	}
	if q.RequiredExperience != nil && strings.TrimSpace(*q.RequiredExperience) != "" {
		tx = tx.Where("required_experience = ?", strings.TrimSpace(*q.RequiredExperience))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count jobs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data loker")
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

	var rows []jobModel.JobModel
	if err := tx.
		Order("deadline ASC, id ASC").
		Limit(q.Limit).Offset(q.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list jobs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data loker")
	}

	resp := make([]*jobDTO.JobResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, jobDTO.NewJobResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", resp, helper.Pagination{
		Limit:  q.Limit,
		Offset: q.Offset,
		Total:  total,
		Count:  len(resp),
	})
}

// PATCH /api/a/jobs/:id (partial update)
func (h *JobController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing jobModel.JobModel
	if err := h.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Loker tidak ditemukan")
		}
		log.Printf("[ERROR] load job id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data loker")
	}

	var req jobDTO.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateJob.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.ImageLink.Set && req.ImageLink.Valid {
		if err := validateJob.Var(req.ImageLink.Value, "url"); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "image_link harus URL valid")
		}
	}

	if !req.HasChanges() {
		return helper.JsonUpdated(c, "Tidak ada perubahan", jobDTO.NewJobResponse(&existing))
	}

	req.ApplyToModel(&existing)
	if err := h.DB.Save(&existing).Error; err != nil {
		log.Printf("[ERROR] update job id=%d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui loker")
	}

	return helper.JsonUpdated(c, "Loker diperbarui", jobDTO.NewJobResponse(&existing))
}

// DELETE /api/a/jobs/:id
func (h *JobController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&jobModel.JobModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] delete job id=%d: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus loker")
	}
	if res.RowsAffected == 0 {
		return helper.JsonOK(c, "Tidak ada data yang dihapus", fiber.Map{
			"id":      id,
			"deleted": false,
		})
	}

	return helper.JsonDeleted(c, "Loker dihapus", fiber.Map{
		"id":      id,
		"deleted": true,
	})
}

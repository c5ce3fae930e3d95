// file: internals/features/listings/jobs/controller/job_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	competitionModel "peluangku_backend/internals/features/listings/competitions/model"
	jobDTO "peluangku_backend/internals/features/listings/jobs/dto"
	jobModel "peluangku_backend/internals/features/listings/jobs/model"
	scholarshipModel "peluangku_backend/internals/features/listings/scholarships/model"
	"peluangku_backend/internals/features/listings/lifecycle"
	helper "peluangku_backend/internals/helpers"
	"peluangku_backend/internals/helpers/timeclock"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Pagination *helper.Pagination `json:"pagination"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&competitionModel.CompetitionModel{},
		&jobModel.JobModel{},
		&scholarshipModel.ScholarshipModel{},
	))

	ctrl := NewJobController(db, timeclock.Fixed{T: testNow})

	app := fiber.New()
	app.Get("/api/public/jobs", ctrl.List)
	app.Get("/api/public/jobs/:id", ctrl.GetByID)
	app.Post("/api/a/jobs", ctrl.Create)
	app.Patch("/api/a/jobs/:id", ctrl.Update)
	app.Delete("/api/a/jobs/:id", ctrl.Delete)
	return app, db
}

func doReq(t *testing.T, app *fiber.App, method, target string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func seedJob(t *testing.T, db *gorm.DB, deadline time.Time, company, location string) *jobModel.JobModel {
	t.Helper()
	m := &jobModel.JobModel{
		JobTitle:           "Backend Engineer",
		Company:            company,
		Location:           location,
		JobDescription:     "Golang + Postgres",
		ApplicationLink:    "https://example.com/apply",
		Deadline:           deadline,
		RequiredExperience: "Entry-level",
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

// Loker kadaluarsa: tersembunyi dari list & get, baru hilang fisik saat sweep.
func TestExpiredJob_HiddenThenSwept(t *testing.T) {
	app, db := newTestApp(t)
	expired := seedJob(t, db, testNow.Add(-24*time.Hour), "PT Maju", "Jakarta")

	status, env := doReq(t, app, http.MethodGet, "/api/public/jobs", nil)
	require.Equal(t, http.StatusOK, status)
	var rows []jobDTO.JobResponse
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Empty(t, rows)

	status, _ = doReq(t, app, http.MethodGet, fmt.Sprintf("/api/public/jobs/%d", expired.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)

	deleted, total, err := lifecycle.SweepExpired(db, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted["jobs"])
	assert.Equal(t, int64(1), total)
}

func TestListJobs_Filters(t *testing.T) {
	app, db := newTestApp(t)
	maju := seedJob(t, db, testNow.Add(24*time.Hour), "PT Maju", "Jakarta")
	seedJob(t, db, testNow.Add(24*time.Hour), "PT Mundur", "Bandung")

	status, env := doReq(t, app, http.MethodGet, "/api/public/jobs?company=PT+Maju&location=Jakarta", nil)
	require.Equal(t, http.StatusOK, status)
	var rows []jobDTO.JobResponse
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, maju.ID, rows[0].ID)

	status, env = doReq(t, app, http.MethodGet, "/api/public/jobs?required_experience=5%2B+years", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Empty(t, rows)
}

// 3 loker future, limit 2: halaman-halaman menyusun ulang hasil tanpa dobel/bolong.
func TestListJobs_PaginationWalk(t *testing.T) {
	app, db := newTestApp(t)
	j1 := seedJob(t, db, testNow.Add(24*time.Hour), "A", "Jakarta")
	j2 := seedJob(t, db, testNow.Add(48*time.Hour), "B", "Jakarta")
	j3 := seedJob(t, db, testNow.Add(72*time.Hour), "C", "Jakarta")

	var seen []uint
	for offset := 0; ; offset += 2 {
		status, env := doReq(t, app, http.MethodGet, fmt.Sprintf("/api/public/jobs?limit=2&offset=%d", offset), nil)
		require.Equal(t, http.StatusOK, status)
		var rows []jobDTO.JobResponse
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		if len(rows) == 0 {
			break
		}
		for _, r := range rows {
			seen = append(seen, r.ID)
		}
	}
	assert.Equal(t, []uint{j1.ID, j2.ID, j3.ID}, seen)
}

func TestCreateJob_ThenUpdateDeadline(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doReq(t, app, http.MethodPost, "/api/a/jobs", fiber.Map{
		"job_title":           "Data Analyst",
		"company":             "PT Data",
		"location":            "Remote",
		"job_description":     "SQL & dashboarding",
		"application_link":    "https://example.com/apply",
		"deadline":            testNow.Add(72 * time.Hour).Format(time.RFC3339),
		"required_experience": "N/A",
	})
	require.Equal(t, http.StatusCreated, status)
	var created jobDTO.JobResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	newDeadline := testNow.Add(120 * time.Hour)
	status, env = doReq(t, app, http.MethodPatch, fmt.Sprintf("/api/a/jobs/%d", created.ID), fiber.Map{
		"deadline": newDeadline.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, status)
	var updated jobDTO.JobResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.True(t, newDeadline.Equal(updated.Deadline))
	assert.Equal(t, created.Company, updated.Company)
}

func TestDeleteJob_NoopSignal(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doReq(t, app, http.MethodDelete, "/api/a/jobs/777", nil)
	require.Equal(t, http.StatusOK, status)
	var res struct {
		Deleted bool `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.False(t, res.Deleted)
}

// file: internals/features/listings/lifecycle/service_test.go
package lifecycle

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	competitionModel "peluangku_backend/internals/features/listings/competitions/model"
	jobModel "peluangku_backend/internals/features/listings/jobs/model"
	scholarshipModel "peluangku_backend/internals/features/listings/scholarships/model"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&competitionModel.CompetitionModel{},
		&jobModel.JobModel{},
		&scholarshipModel.ScholarshipModel{},
	))
	return db
}

func seedCompetition(t *testing.T, db *gorm.DB, deadline time.Time) *competitionModel.CompetitionModel {
	t.Helper()
	m := &competitionModel.CompetitionModel{
		Title:                    "Olimpiade Matematika",
		Description:              "Lomba tingkat nasional",
		Organizer:                "Kemdikbud",
		DeadlineRegistrationDate: deadline,
		RegistrationLink:         "https://example.com/daftar",
		PriceRegister:            "Free",
		Place:                    "Online",
		Category:                 "High School",
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedJob(t *testing.T, db *gorm.DB, deadline time.Time) *jobModel.JobModel {
	t.Helper()
	m := &jobModel.JobModel{
		JobTitle:           "Backend Engineer",
		Company:            "PT Maju",
		Location:           "Jakarta",
		JobDescription:     "Golang + Postgres",
		ApplicationLink:    "https://example.com/apply",
		Deadline:           deadline,
		RequiredExperience: "Entry-level",
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedScholarship(t *testing.T, db *gorm.DB, deadline time.Time) *scholarshipModel.ScholarshipModel {
	t.Helper()
	m := &scholarshipModel.ScholarshipModel{
		ScholarshipName: "Beasiswa Unggulan",
		Description:     "S1 dalam negeri",
		Provider:        "LPDP",
		Eligibility:     "Mahasiswa aktif",
		ApplicationLink: "https://example.com/beasiswa",
		Deadline:        deadline,
		AwardAmount:     "Full Tuition",
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestSweepExpired_DeletesOnlyExpiredRows(t *testing.T) {
	db := newTestDB(t)

	seedCompetition(t, db, testNow.Add(-24*time.Hour)) // expired
	keepComp := seedCompetition(t, db, testNow.Add(48*time.Hour))
	seedJob(t, db, testNow.Add(-time.Minute)) // expired
	seedJob(t, db, testNow.Add(-time.Hour))   // expired
	keepJob := seedJob(t, db, testNow.Add(time.Hour))
	keepSch := seedScholarship(t, db, testNow) // deadline == now: masih visible, tidak boleh tersapu

	deleted, total, err := SweepExpired(db, testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(1), deleted["competitions"])
	assert.Equal(t, int64(2), deleted["jobs"])
	assert.Equal(t, int64(0), deleted["scholarships"])
	assert.Equal(t, int64(3), total)

	// Yang masih future (atau tepat di batas) tetap ada
	var comp competitionModel.CompetitionModel
	require.NoError(t, db.First(&comp, keepComp.ID).Error)
	var job jobModel.JobModel
	require.NoError(t, db.First(&job, keepJob.ID).Error)
	var sch scholarshipModel.ScholarshipModel
	require.NoError(t, db.First(&sch, keepSch.ID).Error)

	// Tidak ada sisa baris expired di tabel mana pun
	for _, col := range Collections {
		var n int64
		require.NoError(t, db.Model(col.NewModel()).
			Scopes(Expired(col.DeadlineCol, testNow)).
			Count(&n).Error)
		assert.Zerof(t, n, "tabel %s masih punya baris expired", col.Name)
	}
}

func TestSweepExpired_Idempotent(t *testing.T) {
	db := newTestDB(t)
	seedJob(t, db, testNow.Add(-time.Hour))
	seedScholarship(t, db, testNow.Add(-time.Hour))

	_, total, err := SweepExpired(db, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	deleted, total, err := SweepExpired(db, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	for _, col := range Collections {
		assert.Equal(t, int64(0), deleted[col.Name])
	}
}

func TestCountForDashboard_WindowBoundaries(t *testing.T) {
	db := newTestDB(t)

	seedCompetition(t, db, testNow.Add(-time.Hour))            // expired: tidak dihitung
	seedCompetition(t, db, testNow)                            // batas bawah inklusif
	seedCompetition(t, db, testNow.Add(ExpiringSoonWindow))    // tepat 7 hari: inklusif
	farComp := testNow.Add(ExpiringSoonWindow + time.Second)   // 7 hari + 1 detik: aktif, bukan expiring soon
	seedCompetition(t, db, farComp)
	seedJob(t, db, testNow.Add(6*24*time.Hour))                // scenario: 6 hari lagi
	seedScholarship(t, db, testNow.Add(30*24*time.Hour))       // jauh di depan

	counts, err := CountForDashboard(db, testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(3), counts["competitions"].Active)
	assert.Equal(t, int64(2), counts["competitions"].ExpiringSoon)
	assert.Equal(t, int64(1), counts["jobs"].Active)
	assert.Equal(t, int64(1), counts["jobs"].ExpiringSoon)
	assert.Equal(t, int64(1), counts["scholarships"].Active)
	assert.Equal(t, int64(0), counts["scholarships"].ExpiringSoon)

	// ExpiringSoon selalu subset dari Active
	for _, col := range Collections {
		c := counts[col.Name]
		assert.LessOrEqualf(t, c.ExpiringSoon, c.Active, "subset property gagal di %s", col.Name)
	}
}

// Kolom time.Time harus bisa di-scan balik utuh lewat driver sqlite yang
// dipakai suite ini; tanpa override tipe kolom, AutoMigrate memilih decltype
// yang dikenali driver di kedua backend.
func TestTimestampColumns_ScanRoundTrip(t *testing.T) {
	db := newTestDB(t)
	deadline := testNow.Add(48 * time.Hour)
	comp := seedCompetition(t, db, deadline)
	job := seedJob(t, db, deadline)
	sch := seedScholarship(t, db, deadline)

	var gotComp competitionModel.CompetitionModel
	require.NoError(t, db.First(&gotComp, comp.ID).Error)
	assert.True(t, deadline.Equal(gotComp.DeadlineRegistrationDate))
	assert.False(t, gotComp.CreatedAt.IsZero())
	assert.False(t, gotComp.UpdatedAt.IsZero())

	var gotJob jobModel.JobModel
	require.NoError(t, db.First(&gotJob, job.ID).Error)
	assert.True(t, deadline.Equal(gotJob.Deadline))
	assert.False(t, gotJob.CreatedAt.IsZero())

	var gotSch scholarshipModel.ScholarshipModel
	require.NoError(t, db.First(&gotSch, sch.ID).Error)
	assert.True(t, deadline.Equal(gotSch.Deadline))
	assert.False(t, gotSch.CreatedAt.IsZero())
}

func TestVisibleScope_BoundaryInclusive(t *testing.T) {
	db := newTestDB(t)
	seedJob(t, db, testNow) // deadline == now → visible

	var n int64
	require.NoError(t, db.Model(&jobModel.JobModel{}).
		Scopes(Visible(jobModel.DeadlineColumn, testNow)).
		Count(&n).Error)
	assert.Equal(t, int64(1), n)

	// satu detik kemudian, record yang sama sudah expired — transisi tanpa write
	require.NoError(t, db.Model(&jobModel.JobModel{}).
		Scopes(Visible(jobModel.DeadlineColumn, testNow.Add(time.Second))).
		Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

// file: internals/features/listings/lifecycle/registry.go
package lifecycle

import (
	competitionModel "peluangku_backend/internals/features/listings/competitions/model"
	jobModel "peluangku_backend/internals/features/listings/jobs/model"
	scholarshipModel "peluangku_backend/internals/features/listings/scholarships/model"
)

// Collection mendeskripsikan satu tabel listing untuk operasi lintas-entity
// (sweep & dashboard): nama, kolom deadline, dan prototype model untuk GORM.
type Collection struct {
	Name        string
	DeadlineCol string
	NewModel    func() any
}

// Collections: ketiga jenis listing. Urutan dipakai juga oleh sweep (fail-fast
// mengikuti urutan ini).
var Collections = []Collection{
	{
		Name:        "competitions",
		DeadlineCol: competitionModel.DeadlineColumn,
		NewModel:    func() any { return &competitionModel.CompetitionModel{} },
	},
	{
		Name:        "jobs",
		DeadlineCol: jobModel.DeadlineColumn,
		NewModel:    func() any { return &jobModel.JobModel{} },
	},
	{
		Name:        "scholarships",
		DeadlineCol: scholarshipModel.DeadlineColumn,
		NewModel:    func() any { return &scholarshipModel.ScholarshipModel{} },
	},
}

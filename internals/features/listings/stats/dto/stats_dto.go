// file: internals/features/listings/stats/dto/stats_dto.go
package dto

import "peluangku_backend/internals/features/listings/lifecycle"

/* ===================== RESPONSES ===================== */

type DashboardStatsResponse struct {
	TotalCompetitions        int64 `json:"total_competitions"`
	TotalJobs                int64 `json:"total_jobs"`
	TotalScholarships        int64 `json:"total_scholarships"`
	CompetitionsExpiringSoon int64 `json:"competitions_expiring_soon"`
	JobsExpiringSoon         int64 `json:"jobs_expiring_soon"`
	ScholarshipsExpiringSoon int64 `json:"scholarships_expiring_soon"`
}

func NewDashboardStatsResponse(counts map[string]lifecycle.DashboardCounts) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		TotalCompetitions:        counts["competitions"].Active,
		TotalJobs:                counts["jobs"].Active,
		TotalScholarships:        counts["scholarships"].Active,
		CompetitionsExpiringSoon: counts["competitions"].ExpiringSoon,
		JobsExpiringSoon:         counts["jobs"].ExpiringSoon,
		ScholarshipsExpiringSoon: counts["scholarships"].ExpiringSoon,
	}
}

type CleanupResultResponse struct {
	CompetitionsDeleted int64 `json:"competitions_deleted"`
	JobsDeleted         int64 `json:"jobs_deleted"`
	ScholarshipsDeleted int64 `json:"scholarships_deleted"`
	TotalDeleted        int64 `json:"total_deleted"`
}

func NewCleanupResultResponse(deleted map[string]int64, total int64) *CleanupResultResponse {
	return &CleanupResultResponse{
		CompetitionsDeleted: deleted["competitions"],
		JobsDeleted:         deleted["jobs"],
		ScholarshipsDeleted: deleted["scholarships"],
		TotalDeleted:        total,
	}
}

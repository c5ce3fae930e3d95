// file: internals/features/listings/jobs/dto/job_dto.go
package dto

import (
	"strings"
	"time"

	model "peluangku_backend/internals/features/listings/jobs/model"
	helper "peluangku_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateJobRequest struct {
	JobTitle           string    `json:"job_title" validate:"required,min=1"`
	Company            string    `json:"company" validate:"required,min=1"`
	Location           string    `json:"location" validate:"required,min=1"`
	JobDescription     string    `json:"job_description" validate:"required,min=1"`
	ApplicationLink    string    `json:"application_link" validate:"required,url"`
	Deadline           time.Time `json:"deadline" validate:"required"`
	RequiredExperience string    `json:"required_experience" validate:"required,min=1"` // "Entry-level" / "3+ years" / "N/A"
	ImageLink          *string   `json:"image_link" validate:"omitempty,url"`
}

func (r CreateJobRequest) ToModel() *model.JobModel {
	m := &model.JobModel{
		JobTitle:           strings.TrimSpace(r.JobTitle),
		Company:            strings.TrimSpace(r.Company),
		Location:           strings.TrimSpace(r.Location),
		JobDescription:     strings.TrimSpace(r.JobDescription),
		ApplicationLink:    strings.TrimSpace(r.ApplicationLink),
		Deadline:           r.Deadline,
		RequiredExperience: strings.TrimSpace(r.RequiredExperience),
	}
	if r.ImageLink != nil {
		v := strings.TrimSpace(*r.ImageLink)
		if v != "" {
			m.ImageLink = &v
		}
	}
	return m
}

// Update: semua optional (sparse update)
type UpdateJobRequest struct {
	JobTitle           *string                 `json:"job_title" validate:"omitempty,min=1"`
	Company            *string                 `json:"company" validate:"omitempty,min=1"`
	Location           *string                 `json:"location" validate:"omitempty,min=1"`
	JobDescription     *string                 `json:"job_description" validate:"omitempty,min=1"`
	ApplicationLink    *string                 `json:"application_link" validate:"omitempty,url"`
	Deadline           *time.Time              `json:"deadline" validate:"omitempty"`
	RequiredExperience *string                 `json:"required_experience" validate:"omitempty,min=1"`
	ImageLink          helper.Optional[string] `json:"image_link" validate:"-"`
}

func (r *UpdateJobRequest) HasChanges() bool {
	return r.JobTitle != nil || r.Company != nil || r.Location != nil ||
		r.JobDescription != nil || r.ApplicationLink != nil || r.Deadline != nil ||
		r.RequiredExperience != nil || r.ImageLink.Set
}

func (r *UpdateJobRequest) ApplyToModel(m *model.JobModel) {
	if r.JobTitle != nil {
		m.JobTitle = strings.TrimSpace(*r.JobTitle)
	}
	if r.Company != nil {
		m.Company = strings.TrimSpace(*r.Company)
	}
	if r.Location != nil {
		m.Location = strings.TrimSpace(*r.Location)
	}
	if r.JobDescription != nil {
		m.JobDescription = strings.TrimSpace(*r.JobDescription)
	}
	if r.ApplicationLink != nil {
		m.ApplicationLink = strings.TrimSpace(*r.ApplicationLink)
	}
	if r.Deadline != nil {
		m.Deadline = *r.Deadline
	}
	if r.RequiredExperience != nil {
		m.RequiredExperience = strings.TrimSpace(*r.RequiredExperience)
	}
	if r.ImageLink.Set {
		m.ImageLink = r.ImageLink.Ptr() // null → clear
	}
}

/* ===================== QUERIES ===================== */

type ListJobQuery struct {
	Location           *string `query:"location"`            // exact match
	Company            *string `query:"company"`             // exact match
	RequiredExperience *string `query:"required_experience"` // exact match
	Limit              int     `query:"limit"`               // default 20, max 100
	Offset             int     `query:"offset"`              // default 0
}

/* ===================== RESPONSES ===================== */

type JobResponse struct {
	ID                 uint      `json:"id"`
	JobTitle           string    `json:"job_title"`
	Company            string    `json:"company"`
	Location           string    `json:"location"`
	JobDescription     string    `json:"job_description"`
	ApplicationLink    string    `json:"application_link"`
	Deadline           time.Time `json:"deadline"`
	RequiredExperience string    `json:"required_experience"`
	ImageLink          *string   `json:"image_link"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewJobResponse(m *model.JobModel) *JobResponse {
	if m == nil {
		return nil
	}
	return &JobResponse{
		ID:                 m.ID,
		JobTitle:           m.JobTitle,
		Company:            m.Company,
		Location:           m.Location,
		JobDescription:     m.JobDescription,
		ApplicationLink:    m.ApplicationLink,
		Deadline:           m.Deadline,
		RequiredExperience: m.RequiredExperience,
		ImageLink:          m.ImageLink,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

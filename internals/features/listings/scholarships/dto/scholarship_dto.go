// file: internals/features/listings/scholarships/dto/scholarship_dto.go
package dto

import (
	"strings"
	"time"

	model "peluangku_backend/internals/features/listings/scholarships/model"
	helper "peluangku_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateScholarshipRequest struct {
	ScholarshipName string    `json:"scholarship_name" validate:"required,min=1"`
	Description     string    `json:"description" validate:"required,min=1"`
	Provider        string    `json:"provider" validate:"required,min=1"`
	Eligibility     string    `json:"eligibility" validate:"required,min=1"`
	ApplicationLink string    `json:"application_link" validate:"required,url"`
	Deadline        time.Time `json:"deadline" validate:"required"`
	AwardAmount     string    `json:"award_amount" validate:"required,min=1"` // "Full Tuition" / "$5000" / "Varies"
	ImageLink       *string   `json:"image_link" validate:"omitempty,url"`
}

func (r CreateScholarshipRequest) ToModel() *model.ScholarshipModel {
	m := &model.ScholarshipModel{
		ScholarshipName: strings.TrimSpace(r.ScholarshipName),
		Description:     strings.TrimSpace(r.Description),
		Provider:        strings.TrimSpace(r.Provider),
		Eligibility:     strings.TrimSpace(r.Eligibility),
		ApplicationLink: strings.TrimSpace(r.ApplicationLink),
		Deadline:        r.Deadline,
		AwardAmount:     strings.TrimSpace(r.AwardAmount),
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
type UpdateScholarshipRequest struct {
	ScholarshipName *string                 `json:"scholarship_name" validate:"omitempty,min=1"`
	Description     *string                 `json:"description" validate:"omitempty,min=1"`
	Provider        *string                 `json:"provider" validate:"omitempty,min=1"`
	Eligibility     *string                 `json:"eligibility" validate:"omitempty,min=1"`
	ApplicationLink *string                 `json:"application_link" validate:"omitempty,url"`
	Deadline        *time.Time              `json:"deadline" validate:"omitempty"`
	AwardAmount     *string                 `json:"award_amount" validate:"omitempty,min=1"`
	ImageLink       helper.Optional[string] `json:"image_link" validate:"-"`
}

func (r *UpdateScholarshipRequest) HasChanges() bool {
	return r.ScholarshipName != nil || r.Description != nil || r.Provider != nil ||
		r.Eligibility != nil || r.ApplicationLink != nil || r.Deadline != nil ||
		r.AwardAmount != nil || r.ImageLink.Set
}

func (r *UpdateScholarshipRequest) ApplyToModel(m *model.ScholarshipModel) {
	if r.ScholarshipName != nil {
		m.ScholarshipName = strings.TrimSpace(*r.ScholarshipName)
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.Provider != nil {
		m.Provider = strings.TrimSpace(*r.Provider)
	}
	if r.Eligibility != nil {
		m.Eligibility = strings.TrimSpace(*r.Eligibility)
	}
	if r.ApplicationLink != nil {
		m.ApplicationLink = strings.TrimSpace(*r.ApplicationLink)
	}
	if r.Deadline != nil {
		m.Deadline = *r.Deadline
	}
	if r.AwardAmount != nil {
		m.AwardAmount = strings.TrimSpace(*r.AwardAmount)
	}
	if r.ImageLink.Set {
		m.ImageLink = r.ImageLink.Ptr() // null → clear
	}
}

/* ===================== QUERIES ===================== */

type ListScholarshipQuery struct {
	Provider    *string `query:"provider"`     // exact match
	AwardAmount *string `query:"award_amount"` // exact match
	Limit       int     `query:"limit"`        // default 20, max 100
	Offset      int     `query:"offset"`       // default 0
}

/* ===================== RESPONSES ===================== */

type ScholarshipResponse struct {
	ID              uint      `json:"id"`
	ScholarshipName string    `json:"scholarship_name"`
	Description     string    `json:"description"`
	Provider        string    `json:"provider"`
	Eligibility     string    `json:"eligibility"`
	ApplicationLink string    `json:"application_link"`
	Deadline        time.Time `json:"deadline"`
	AwardAmount     string    `json:"award_amount"`
	ImageLink       *string   `json:"image_link"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewScholarshipResponse(m *model.ScholarshipModel) *ScholarshipResponse {
	if m == nil {
		return nil
	}
	return &ScholarshipResponse{
		ID:              m.ID,
		ScholarshipName: m.ScholarshipName,
		Description:     m.Description,
		Provider:        m.Provider,
		Eligibility:     m.Eligibility,
		ApplicationLink: m.ApplicationLink,
		Deadline:        m.Deadline,
		AwardAmount:     m.AwardAmount,
		ImageLink:       m.ImageLink,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// file: internals/features/listings/competitions/dto/competition_dto.go
package dto

import (
	"strings"
	"time"

	model "peluangku_backend/internals/features/listings/competitions/model"
	helper "peluangku_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateCompetitionRequest struct {
	Title                    string    `json:"title" validate:"required,min=1"`
	Description              string    `json:"description" validate:"required,min=1"`
	Organizer                string    `json:"organizer" validate:"required,min=1"`
	DeadlineRegistrationDate time.Time `json:"deadline_registration_date" validate:"required"`
	RegistrationLink         string    `json:"registration_link" validate:"required,url"`
	GuideBookLink            *string   `json:"guide_book_link" validate:"omitempty,url"`
	PriceRegister            string    `json:"price_register" validate:"required,min=1"` // "Free" / "Rp 50.000" / "N/A"
	Place                    string    `json:"place" validate:"required,min=1"`
	Category                 string    `json:"category" validate:"required,min=1"`
	ImageLink                *string   `json:"image_link" validate:"omitempty,url"`
}

func (r CreateCompetitionRequest) ToModel() *model.CompetitionModel {
	m := &model.CompetitionModel{
		Title:                    strings.TrimSpace(r.Title),
		Description:              strings.TrimSpace(r.Description),
		Organizer:                strings.TrimSpace(r.Organizer),
		DeadlineRegistrationDate: r.DeadlineRegistrationDate,
		RegistrationLink:         strings.TrimSpace(r.RegistrationLink),
		PriceRegister:            strings.TrimSpace(r.PriceRegister),
		Place:                    strings.TrimSpace(r.Place),
		Category:                 strings.TrimSpace(r.Category),
	}
	if r.GuideBookLink != nil {
		v := strings.TrimSpace(*r.GuideBookLink)
		if v != "" {
			m.GuideBookLink = &v
		}
	}
	if r.ImageLink != nil {
		v := strings.TrimSpace(*r.ImageLink)
		if v != "" {
			m.ImageLink = &v
		}
	}
	// CreatedAt/UpdatedAt diisi otomatis GORM (autoCreateTime/autoUpdateTime)
	return m
}

// Update: semua optional (sparse update). Link nullable pakai Optional supaya
// "dikirim null" (clear) bisa dibedakan dari "tidak dikirim".
type UpdateCompetitionRequest struct {
	Title                    *string                 `json:"title" validate:"omitempty,min=1"`
	Description              *string                 `json:"description" validate:"omitempty,min=1"`
	Organizer                *string                 `json:"organizer" validate:"omitempty,min=1"`
	DeadlineRegistrationDate *time.Time              `json:"deadline_registration_date" validate:"omitempty"`
	RegistrationLink         *string                 `json:"registration_link" validate:"omitempty,url"`
	GuideBookLink            helper.Optional[string] `json:"guide_book_link" validate:"-"`
	PriceRegister            *string                 `json:"price_register" validate:"omitempty,min=1"`
	Place                    *string                 `json:"place" validate:"omitempty,min=1"`
	Category                 *string                 `json:"category" validate:"omitempty,min=1"`
	ImageLink                helper.Optional[string] `json:"image_link" validate:"-"`
}

// HasChanges: false jika payload tidak membawa satu field pun.
func (r *UpdateCompetitionRequest) HasChanges() bool {
	return r.Title != nil || r.Description != nil || r.Organizer != nil ||
		r.DeadlineRegistrationDate != nil || r.RegistrationLink != nil ||
		r.GuideBookLink.Set || r.PriceRegister != nil || r.Place != nil ||
		r.Category != nil || r.ImageLink.Set
}

// ApplyToModel: terapkan hanya field yang dikirim
func (r *UpdateCompetitionRequest) ApplyToModel(m *model.CompetitionModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.Organizer != nil {
		m.Organizer = strings.TrimSpace(*r.Organizer)
	}
	if r.DeadlineRegistrationDate != nil {
		m.DeadlineRegistrationDate = *r.DeadlineRegistrationDate
	}
	if r.RegistrationLink != nil {
		m.RegistrationLink = strings.TrimSpace(*r.RegistrationLink)
	}
	if r.GuideBookLink.Set {
		m.GuideBookLink = r.GuideBookLink.Ptr() // null → clear
	}
	if r.PriceRegister != nil {
		m.PriceRegister = strings.TrimSpace(*r.PriceRegister)
	}
	if r.Place != nil {
		m.Place = strings.TrimSpace(*r.Place)
	}
	if r.Category != nil {
		m.Category = strings.TrimSpace(*r.Category)
	}
	if r.ImageLink.Set {
		m.ImageLink = r.ImageLink.Ptr()
	}
	// UpdatedAt di-handle autoUpdateTime saat Save
}

/* ===================== QUERIES ===================== */

type ListCompetitionQuery struct {
	Category      *string `query:"category"`       // exact match
	Place         *string `query:"place"`          // exact match
	PriceRegister *string `query:"price_register"` // exact match
	Limit         int     `query:"limit"`          // default 20, max 100
	Offset        int     `query:"offset"`         // default 0
}

/* ===================== RESPONSES ===================== */

type CompetitionResponse struct {
	ID                       uint      `json:"id"`
	Title                    string    `json:"title"`
	Description              string    `json:"description"`
	Organizer                string    `json:"organizer"`
	DeadlineRegistrationDate time.Time `json:"deadline_registration_date"`
	RegistrationLink         string    `json:"registration_link"`
	GuideBookLink            *string   `json:"guide_book_link"`
	PriceRegister            string    `json:"price_register"`
	Place                    string    `json:"place"`
	Category                 string    `json:"category"`
	ImageLink                *string   `json:"image_link"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func NewCompetitionResponse(m *model.CompetitionModel) *CompetitionResponse {
	if m == nil {
		return nil
	}
	return &CompetitionResponse{
		ID:                       m.ID,
		Title:                    m.Title,
		Description:              m.Description,
		Organizer:                m.Organizer,
		DeadlineRegistrationDate: m.DeadlineRegistrationDate,
		RegistrationLink:         m.RegistrationLink,
		GuideBookLink:            m.GuideBookLink,
		PriceRegister:            m.PriceRegister,
		Place:                    m.Place,
		Category:                 m.Category,
		ImageLink:                m.ImageLink,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

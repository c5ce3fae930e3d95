// file: internals/features/listings/competitions/model/competition_model.go
package model

import "time"

type CompetitionModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title;type:text;not null" json:"title"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
	Organizer   string `gorm:"column:organizer;type:text;not null" json:"organizer"`

	// Anchor temporal: lewat dari ini, lomba disembunyikan dari semua read path
	DeadlineRegistrationDate time.Time `gorm:"column:deadline_registration_date;not null;index" json:"deadline_registration_date"`

	RegistrationLink string  `gorm:"column:registration_link;type:text;not null" json:"registration_link"`
	GuideBookLink    *string `gorm:"column:guide_book_link;type:text" json:"guide_book_link"`
	PriceRegister    string  `gorm:"column:price_register;type:text;not null" json:"price_register"` // mis. "Free", "Rp 50.000", "N/A"
	Place            string  `gorm:"column:place;type:text;not null" json:"place"`                   // mis. "Online", "Jakarta"
	Category         string  `gorm:"column:category;type:text;not null" json:"category"`             // mis. "High School", "College", "General"
	ImageLink        *string `gorm:"column:image_link;type:text" json:"image_link"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (CompetitionModel) TableName() string { return "competitions" }

// Kolom deadline untuk scope lifecycle
const DeadlineColumn = "deadline_registration_date"

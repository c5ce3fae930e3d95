// file: internals/features/listings/scholarships/model/scholarship_model.go
package model

import "time"

type ScholarshipModel struct {
	ID              uint   `gorm:"column:id;primaryKey" json:"id"`
	ScholarshipName string `gorm:"column:scholarship_name;type:text;not null" json:"scholarship_name"`
	Description     string `gorm:"column:description;type:text;not null" json:"description"`
	Provider        string `gorm:"column:provider;type:text;not null" json:"provider"`
	Eligibility     string `gorm:"column:eligibility;type:text;not null" json:"eligibility"`

	ApplicationLink string `gorm:"column:application_link;type:text;not null" json:"application_link"`

	// Anchor temporal
	Deadline time.Time `gorm:"column:deadline;not null;index" json:"deadline"`

	AwardAmount string  `gorm:"column:award_amount;type:text;not null" json:"award_amount"` // mis. "Full Tuition", "$5000", "Varies"
	ImageLink   *string `gorm:"column:image_link;type:text" json:"image_link"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (ScholarshipModel) TableName() string { return "scholarships" }

const DeadlineColumn = "deadline"

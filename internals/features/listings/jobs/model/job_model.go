// file: internals/features/listings/jobs/model/job_model.go
package model

import "time"

type JobModel struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"id"`
	JobTitle       string `gorm:"column:job_title;type:text;not null" json:"job_title"`
	Company        string `gorm:"column:company;type:text;not null" json:"company"`
	Location       string `gorm:"column:location;type:text;not null" json:"location"`
	JobDescription string `gorm:"column:job_description;type:text;not null" json:"job_description"`

	ApplicationLink string `gorm:"column:application_link;type:text;not null" json:"application_link"`

	// Anchor temporal
	Deadline time.Time `gorm:"column:deadline;not null;index" json:"deadline"`

	RequiredExperience string  `gorm:"column:required_experience;type:text;not null" json:"required_experience"` // mis. "Entry-level", "3+ years", "N/A"
	ImageLink          *string `gorm:"column:image_link;type:text" json:"image_link"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (JobModel) TableName() string { return "jobs" }

const DeadlineColumn = "deadline"

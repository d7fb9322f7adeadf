package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job represents a job posting on the board.
type Job struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Company     string    `json:"company" gorm:"size:255;not null;index"`
	Location    string    `json:"location" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Salary      string    `json:"salary,omitempty" gorm:"size:100"`
	PostedDate  time.Time `json:"postedDate" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// StatusPending is the initial status of every application.
	StatusPending = "Pending"
	// StatusAccepted marks an application accepted by the company.
	StatusAccepted = "Accepted"
	// StatusRejected marks an application rejected by the company.
	StatusRejected = "Rejected"
)

// ValidStatus reports whether s is one of the three application statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Application represents a job application submitted by a user.
type Application struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	JobID       uuid.UUID  `json:"jobId" gorm:"type:char(36);not null;index"`
	UserID      *uuid.UUID `json:"userId,omitempty" gorm:"type:char(36);index"`
	Name        string     `json:"name" gorm:"size:255;not null"`
	Email       string     `json:"email" gorm:"size:255;not null"`
	ResumeLink  string     `json:"resumeLink,omitempty" gorm:"size:512"`
	CoverLetter string     `json:"coverLetter,omitempty" gorm:"type:text"`
	AppliedDate time.Time  `json:"appliedDate" gorm:"index"`
	Status      string     `json:"status" gorm:"size:20;default:'Pending'"`

	// Relations
	Job *Job `json:"-" gorm:"foreignKey:JobID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application status constants
const (
	ApplicationStatusSubmitted = "SUBMITTED"
	ApplicationStatusAccepted  = "ACCEPTED"
	ApplicationStatusRejected  = "REJECTED"
)

// Application is a lawyer-initiated request to take an open case. Like an
// invitation it is mutated exactly once.
type Application struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID   string `gorm:"type:uuid;not null;index" json:"case_id"`
	LawyerID string `gorm:"type:uuid;not null;index" json:"lawyer_id"`

	// Free-text cover message from the lawyer
	Message string `gorm:"type:text" json:"message"`

	Status string `gorm:"not null;default:SUBMITTED;index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Application model
func (Application) TableName() string {
	return "applications"
}

// IsSubmitted checks if the application is still awaiting a response
func (a *Application) IsSubmitted() bool {
	return a.Status == ApplicationStatusSubmitted
}

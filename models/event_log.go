package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventLog is a persisted record of a published domain event. Rows are
// written asynchronously after the triggering command commits; a failed
// write is logged and dropped, never retried.
type EventLog struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name    string `gorm:"not null;index" json:"name"`
	CaseID  string `gorm:"type:uuid;index" json:"case_id"`
	Payload string `gorm:"type:text" json:"payload"`
}

// BeforeCreate hook to generate UUID
func (e *EventLog) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for EventLog model
func (EventLog) TableName() string {
	return "event_logs"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseState is one record in a case's append-only status history. Sequence
// is a per-case monotonic counter and is what orders the history; RecordedAt
// is wall-clock time kept for display only.
type CaseState struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CaseID     string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_case_state_seq" json:"case_id"`
	Status     string    `gorm:"not null" json:"status"`
	Sequence   int       `gorm:"not null;uniqueIndex:idx_case_state_seq" json:"sequence"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
}

// BeforeCreate hook to generate UUID
func (s *CaseState) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseState model
func (CaseState) TableName() string {
	return "case_states"
}

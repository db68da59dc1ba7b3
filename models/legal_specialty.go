package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegalSpecialty represents a legal specialty a case can be classified under
// (civil, penal, laboral, etc.)
type LegalSpecialty struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Code     string `gorm:"size:15;not null;uniqueIndex" json:"code"`
	Name     string `gorm:"size:150;not null" json:"name"`
	IsActive bool   `json:"is_active"`
}

// BeforeCreate hook to generate UUID
func (s *LegalSpecialty) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (LegalSpecialty) TableName() string {
	return "legal_specialties"
}

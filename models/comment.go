package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment type constants
const (
	CommentTypeGeneral     = "GENERAL"
	CommentTypeFinalReview = "FINAL_REVIEW"
)

// Comment is an annotation on a case. FINAL_REVIEW comments can only be
// created while the case is ACCEPTED.
type Comment struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID   string `gorm:"type:uuid;not null;index" json:"case_id"`
	AuthorID string `gorm:"type:uuid;not null;index" json:"author_id"`

	Body string `gorm:"type:text;not null" json:"body"`
	Type string `gorm:"not null;default:GENERAL;index" json:"type"`
}

// BeforeCreate hook to generate UUID
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}

// IsValidCommentType checks if the comment type is valid
func IsValidCommentType(commentType string) bool {
	return commentType == CommentTypeGeneral || commentType == CommentTypeFinalReview
}

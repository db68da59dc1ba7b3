package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitation status constants
const (
	InvitationStatusPending  = "PENDING"
	InvitationStatusAccepted = "ACCEPTED"
	InvitationStatusRejected = "REJECTED"
)

// Recruitment decisions (shared by invitation and application responses)
const (
	DecisionAccept = "ACCEPT"
	DecisionReject = "REJECT"
)

// Invitation is a client-initiated recruitment request to a specific lawyer.
// It is created PENDING and mutated exactly once; a rejected invitation is
// never re-opened.
type Invitation struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// At most one invitation per (case, lawyer) pair
	CaseID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_invitation_case_lawyer" json:"case_id"`
	LawyerID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_invitation_case_lawyer" json:"lawyer_id"`

	Status string `gorm:"not null;default:PENDING;index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Invitation model
func (Invitation) TableName() string {
	return "invitations"
}

// IsPending checks if the invitation is still awaiting a response
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}

// IsValidDecision checks if the decision is valid
func IsValidDecision(decision string) bool {
	return decision == DecisionAccept || decision == DecisionReject
}

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusOpen       = "OPEN"
	CaseStatusEvaluation = "EVALUATION"
	CaseStatusAccepted   = "ACCEPTED"
	CaseStatusClosed     = "CLOSED"
	CaseStatusCanceled   = "CANCELED"
)

// MaxCaseDescriptionLength is the maximum allowed length for a case description
const MaxCaseDescriptionLength = 500

// Case represents a legal matter brokered between a client and a lawyer
type Case struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Client relationship (owner of the case)
	ClientID string `gorm:"type:uuid;not null;index" json:"client_id"`

	// Case details
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Optional classification
	SpecialtyID *string         `gorm:"type:uuid" json:"specialty_id,omitempty"`
	Specialty   *LegalSpecialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`

	// Status mirrors the tail of States and is kept in sync transactionally;
	// it is never recomputed from the history on reads.
	Status string `gorm:"not null;default:OPEN;index" json:"status"`

	// Set if and only if the case has ever reached ACCEPTED
	AssignedLawyerID *string `gorm:"type:uuid;index" json:"assigned_lawyer_id,omitempty"`

	// Optimistic concurrency token, incremented on every command write
	Version int `gorm:"not null;default:0" json:"version"`

	// Owned collections
	States       []CaseState   `gorm:"foreignKey:CaseID" json:"states,omitempty"`
	Invitations  []Invitation  `gorm:"foreignKey:CaseID" json:"invitations,omitempty"`
	Applications []Application `gorm:"foreignKey:CaseID" json:"applications,omitempty"`
	Comments     []Comment     `gorm:"foreignKey:CaseID" json:"comments,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// NewCase builds a case in OPEN with its first state record already appended.
// Title and description validation happens at the service boundary.
func NewCase(clientID, title, description string, specialtyID *string) *Case {
	c := &Case{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Title:       title,
		Description: description,
		SpecialtyID: specialtyID,
	}
	c.appendState(CaseStatusOpen)
	return c
}

// IsOpen checks if the case is open
func (c *Case) IsOpen() bool {
	return c.Status == CaseStatusOpen
}

// IsTerminal checks if the case has reached a terminal status
func (c *Case) IsTerminal() bool {
	return c.Status == CaseStatusClosed || c.Status == CaseStatusCanceled
}

// Evaluate moves the case into EVALUATION. Calling it while the case is
// already in EVALUATION is a no-op; terminal cases cannot be evaluated.
func (c *Case) Evaluate() error {
	if c.IsTerminal() {
		return fmt.Errorf("%w: cannot evaluate a %s case", ErrInvalidTransition, c.Status)
	}
	if c.Status == CaseStatusEvaluation {
		return nil
	}
	c.appendState(CaseStatusEvaluation)
	return nil
}

// Accept assigns the lawyer and moves the case to ACCEPTED
func (c *Case) Accept(lawyerID string) error {
	if c.IsTerminal() {
		return fmt.Errorf("%w: cannot accept a %s case", ErrInvalidTransition, c.Status)
	}
	c.AssignedLawyerID = &lawyerID
	c.appendState(CaseStatusAccepted)
	return nil
}

// Close moves the case to CLOSED; only legal from ACCEPTED
func (c *Case) Close() error {
	if c.Status != CaseStatusAccepted {
		return fmt.Errorf("%w: cannot close a %s case", ErrInvalidTransition, c.Status)
	}
	c.appendState(CaseStatusClosed)
	return nil
}

// Cancel moves the case to CANCELED; only legal from OPEN or EVALUATION
func (c *Case) Cancel() error {
	if c.Status != CaseStatusOpen && c.Status != CaseStatusEvaluation {
		return fmt.Errorf("%w: cannot cancel a %s case", ErrInvalidTransition, c.Status)
	}
	c.appendState(CaseStatusCanceled)
	return nil
}

// Reopen moves the case back to OPEN; only legal from EVALUATION
func (c *Case) Reopen() error {
	if c.Status != CaseStatusEvaluation {
		return fmt.Errorf("%w: cannot reopen a %s case", ErrInvalidTransition, c.Status)
	}
	c.appendState(CaseStatusOpen)
	return nil
}

// HasNoPendingRecruitment reports whether every invitation and application
// on the loaded aggregate has been resolved. The workflows use it to decide
// whether a rejection should reopen the case.
func (c *Case) HasNoPendingRecruitment() bool {
	for _, inv := range c.Invitations {
		if inv.Status == InvitationStatusPending {
			return false
		}
	}
	for _, app := range c.Applications {
		if app.Status == ApplicationStatusSubmitted {
			return false
		}
	}
	return true
}

// HasInvitationFor reports whether the lawyer was ever invited to this case,
// regardless of the invitation's current status
func (c *Case) HasInvitationFor(lawyerID string) bool {
	for _, inv := range c.Invitations {
		if inv.LawyerID == lawyerID {
			return true
		}
	}
	return false
}

// appendState records the transition in memory. The new record carries an
// empty ID until persisted; services create pending records inside the
// command transaction.
func (c *Case) appendState(status string) {
	seq := 1
	if n := len(c.States); n > 0 {
		seq = c.States[n-1].Sequence + 1
	}
	c.Status = status
	c.States = append(c.States, CaseState{
		CaseID:     c.ID,
		Status:     status,
		Sequence:   seq,
		RecordedAt: time.Now(),
	})
}

// PendingStates returns the state records appended since the aggregate was
// loaded (those not yet persisted)
func (c *Case) PendingStates() []*CaseState {
	var pending []*CaseState
	for i := range c.States {
		if c.States[i].ID == "" {
			pending = append(pending, &c.States[i])
		}
	}
	return pending
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	validStatuses := []string{
		CaseStatusOpen,
		CaseStatusEvaluation,
		CaseStatusAccepted,
		CaseStatusClosed,
		CaseStatusCanceled,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}

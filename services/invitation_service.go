package services

import (
	"errors"
	"fmt"
	"law_link_app_go/models"

	"gorm.io/gorm"
)

// InvitationService manages lawyer invitations issued by the client and
// their effect on the owning case.
type InvitationService struct {
	DB     *gorm.DB
	Events EventSink
}

func NewInvitationService(db *gorm.DB, events EventSink) *InvitationService {
	return &InvitationService{DB: db, Events: events}
}

// Invite creates a PENDING invitation for the lawyer. The first recruitment
// activity on an open case pushes it into EVALUATION; a lawyer can only ever
// be invited once per case, whatever became of the earlier invitation.
func (s *InvitationService) Invite(caseID, lawyerID, clientID string) (*models.Invitation, error) {
	if lawyerID == "" {
		return nil, fmt.Errorf("%w: lawyer id is required", ErrInvalidInput)
	}

	var invitation *models.Invitation
	var event LawyerInvited

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		kase, err := loadCase(tx, caseID)
		if err != nil {
			return err
		}
		if kase.ClientID != clientID {
			return fmt.Errorf("%w: case %s does not belong to client %s", ErrOwnershipMismatch, caseID, clientID)
		}
		if kase.HasInvitationFor(lawyerID) {
			return fmt.Errorf("%w: lawyer %s on case %s", ErrDuplicateInvitation, lawyerID, caseID)
		}

		version := kase.Version
		if kase.IsOpen() {
			if err := kase.Evaluate(); err != nil {
				return err
			}
		}

		invitation = &models.Invitation{
			CaseID:   kase.ID,
			LawyerID: lawyerID,
			Status:   models.InvitationStatusPending,
		}
		if err := tx.Create(invitation).Error; err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}

		event = LawyerInvited{
			CaseID:       kase.ID,
			InvitationID: invitation.ID,
			ClientID:     clientID,
			LawyerID:     lawyerID,
		}
		return persistCase(tx, kase, version)
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(event)
	return invitation, nil
}

// Respond records the invited lawyer's decision. Accepting assigns the
// lawyer and moves the case to ACCEPTED; rejecting the last outstanding
// recruitment reopens the case.
func (s *InvitationService) Respond(invitationID, lawyerID, decision string) error {
	if !models.IsValidDecision(decision) {
		return fmt.Errorf("%w: unknown decision %q", ErrInvalidInput, decision)
	}

	var event Event

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var loaded models.Invitation
		if err := tx.First(&loaded, "id = ?", invitationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrInvitationNotFound, invitationID)
			}
			return fmt.Errorf("failed to load invitation: %w", err)
		}
		if loaded.LawyerID != lawyerID {
			return fmt.Errorf("%w: invitation %s was not sent to lawyer %s", ErrOwnershipMismatch, invitationID, lawyerID)
		}

		kase, err := loadCase(tx, loaded.CaseID)
		if err != nil {
			return err
		}
		if kase.Status != models.CaseStatusEvaluation {
			return fmt.Errorf("%w: cannot respond to an invitation on a %s case", models.ErrInvalidTransition, kase.Status)
		}

		// Work on the aggregate's copy so the recruitment check below
		// already sees the mutation
		invitation := findInvitation(kase, invitationID)
		if invitation == nil {
			return fmt.Errorf("%w: %s", ErrInvitationNotFound, invitationID)
		}
		if !invitation.IsPending() {
			return fmt.Errorf("%w: invitation %s was already %s", models.ErrInvalidTransition, invitationID, invitation.Status)
		}

		version := kase.Version

		if decision == models.DecisionAccept {
			invitation.Status = models.InvitationStatusAccepted
			if err := kase.Accept(lawyerID); err != nil {
				return err
			}
			event = InvitationAccepted{CaseID: kase.ID, InvitationID: invitationID, LawyerID: lawyerID}
		} else {
			invitation.Status = models.InvitationStatusRejected
			if kase.HasNoPendingRecruitment() {
				if err := kase.Reopen(); err != nil {
					return err
				}
			}
			event = InvitationRejected{CaseID: kase.ID, InvitationID: invitationID, LawyerID: lawyerID}
		}

		err = tx.Model(&models.Invitation{}).
			Where("id = ?", invitationID).
			Update("status", invitation.Status).Error
		if err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}

		return persistCase(tx, kase, version)
	})
	if err != nil {
		return err
	}

	s.Events.Publish(event)
	return nil
}

// GetInvitationsByLawyer returns every invitation sent to the lawyer
func (s *InvitationService) GetInvitationsByLawyer(lawyerID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := s.DB.Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

// GetInvitationsByCase returns every invitation issued for the case
func (s *InvitationService) GetInvitationsByCase(caseID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := s.DB.Where("case_id = ?", caseID).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

// findInvitation locates the invitation inside the loaded aggregate
func findInvitation(kase *models.Case, invitationID string) *models.Invitation {
	for i := range kase.Invitations {
		if kase.Invitations[i].ID == invitationID {
			return &kase.Invitations[i]
		}
	}
	return nil
}

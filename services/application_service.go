package services

import (
	"errors"
	"fmt"
	"law_link_app_go/models"

	"gorm.io/gorm"
)

// ApplicationService manages lawyer applications against open cases and
// their effect on the owning case.
type ApplicationService struct {
	DB     *gorm.DB
	Events EventSink
}

func NewApplicationService(db *gorm.DB, events EventSink) *ApplicationService {
	return &ApplicationService{DB: db, Events: events}
}

// Submit files an application against an open case. Unlike invitations,
// applications cannot target a case already under evaluation; submitting
// moves the case into EVALUATION.
func (s *ApplicationService) Submit(caseID, lawyerID, message string) (*models.Application, error) {
	if lawyerID == "" {
		return nil, fmt.Errorf("%w: lawyer id is required", ErrInvalidInput)
	}

	var application *models.Application
	var event ApplicationSubmitted

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		kase, err := loadCase(tx, caseID)
		if err != nil {
			return err
		}
		if !kase.IsOpen() {
			return fmt.Errorf("%w: applications can only target an open case, case %s is %s", models.ErrInvalidTransition, caseID, kase.Status)
		}

		version := kase.Version
		if err := kase.Evaluate(); err != nil {
			return err
		}

		application = &models.Application{
			CaseID:   kase.ID,
			LawyerID: lawyerID,
			Message:  textPolicy.Sanitize(message),
			Status:   models.ApplicationStatusSubmitted,
		}
		if err := tx.Create(application).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}

		event = ApplicationSubmitted{
			CaseID:        kase.ID,
			ApplicationID: application.ID,
			LawyerID:      lawyerID,
		}
		return persistCase(tx, kase, version)
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(event)
	return application, nil
}

// Respond records the client's decision on an application. Accepting assigns
// the applicant and moves the case to ACCEPTED; rejecting the last
// outstanding recruitment reopens the case.
//
// Accept intentionally carries no EVALUATION guard beyond what Case.Accept
// enforces, while Reject requires the case to be under evaluation; the
// asymmetry matches the workflow this was built against.
func (s *ApplicationService) Respond(applicationID, clientID, decision string) error {
	if !models.IsValidDecision(decision) {
		return fmt.Errorf("%w: unknown decision %q", ErrInvalidInput, decision)
	}

	var event Event

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var loaded models.Application
		if err := tx.First(&loaded, "id = ?", applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrApplicationNotFound, applicationID)
			}
			return fmt.Errorf("failed to load application: %w", err)
		}

		kase, err := loadCase(tx, loaded.CaseID)
		if err != nil {
			return err
		}
		if kase.ClientID != clientID {
			return fmt.Errorf("%w: case %s does not belong to client %s", ErrOwnershipMismatch, kase.ID, clientID)
		}

		application := findApplication(kase, applicationID)
		if application == nil {
			return fmt.Errorf("%w: %s", ErrApplicationNotFound, applicationID)
		}
		if !application.IsSubmitted() {
			return fmt.Errorf("%w: application %s was already %s", models.ErrInvalidTransition, applicationID, application.Status)
		}

		version := kase.Version

		if decision == models.DecisionAccept {
			application.Status = models.ApplicationStatusAccepted
			if err := kase.Accept(application.LawyerID); err != nil {
				return err
			}
			event = ApplicationAccepted{CaseID: kase.ID, ApplicationID: applicationID, ClientID: clientID}
		} else {
			if kase.Status != models.CaseStatusEvaluation {
				return fmt.Errorf("%w: cannot reject an application on a %s case", models.ErrInvalidTransition, kase.Status)
			}
			application.Status = models.ApplicationStatusRejected
			if kase.HasNoPendingRecruitment() {
				if err := kase.Reopen(); err != nil {
					return err
				}
			}
			event = ApplicationRejected{CaseID: kase.ID, ApplicationID: applicationID, ClientID: clientID}
		}

		err = tx.Model(&models.Application{}).
			Where("id = ?", applicationID).
			Update("status", application.Status).Error
		if err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		return persistCase(tx, kase, version)
	})
	if err != nil {
		return err
	}

	s.Events.Publish(event)
	return nil
}

// GetApplicationsByCase returns every application filed against the case
func (s *ApplicationService) GetApplicationsByCase(caseID string) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.Where("case_id = ?", caseID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// GetApplicationsByLawyer returns every application the lawyer has filed
func (s *ApplicationService) GetApplicationsByLawyer(lawyerID string) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// findApplication locates the application inside the loaded aggregate
func findApplication(kase *models.Case, applicationID string) *models.Application {
	for i := range kase.Applications {
		if kase.Applications[i].ID == applicationID {
			return &kase.Applications[i]
		}
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"law_link_app_go/models"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// textPolicy strips all markup from user-supplied text before it is stored
var textPolicy = bluemonday.StrictPolicy()

// CaseService is the command/query surface for the case lifecycle. Commands
// run inside a single transaction and publish one domain event on success.
type CaseService struct {
	DB     *gorm.DB
	Events EventSink
}

func NewCaseService(db *gorm.DB, events EventSink) *CaseService {
	return &CaseService{DB: db, Events: events}
}

// loadCase fetches the full aggregate a command mutates: the case, its
// ordered status history and both recruitment collections
func loadCase(tx *gorm.DB, caseID string) (*models.Case, error) {
	var kase models.Case
	err := tx.
		Preload("States", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Preload("Invitations").
		Preload("Applications").
		First(&kase, "id = ?", caseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	return &kase, nil
}

// persistCase writes the mutated case back guarded by the version read at
// load time, and creates any state records the transition appended. A
// concurrent writer bumping the version first surfaces as ErrStaleCase and
// rolls the whole command back.
func persistCase(tx *gorm.DB, kase *models.Case, loadedVersion int) error {
	res := tx.Model(&models.Case{}).
		Where("id = ? AND version = ?", kase.ID, loadedVersion).
		Updates(map[string]interface{}{
			"status":             kase.Status,
			"assigned_lawyer_id": kase.AssignedLawyerID,
			"version":            loadedVersion + 1,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update case: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrStaleCase, kase.ID)
	}

	for _, state := range kase.PendingStates() {
		if err := tx.Create(state).Error; err != nil {
			return fmt.Errorf("failed to append case state: %w", err)
		}
	}
	return nil
}

// CreateCase opens a new case for the client and records its first state
func (s *CaseService) CreateCase(clientID, title, description string, specialtyID *string) (*models.Case, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(textPolicy.Sanitize(description))

	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(description) > models.MaxCaseDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, models.MaxCaseDescriptionLength)
	}

	if specialtyID != nil {
		var specialty models.LegalSpecialty
		if err := s.DB.First(&specialty, "id = ?", *specialtyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrSpecialtyNotFound, *specialtyID)
			}
			return nil, fmt.Errorf("failed to load specialty: %w", err)
		}
	}

	kase := models.NewCase(clientID, title, description, specialtyID)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Creating the case also creates the appended OPEN state record
		return tx.Create(kase).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	s.Events.Publish(CaseCreated{CaseID: kase.ID, ClientID: kase.ClientID})
	return kase, nil
}

// CloseCase closes an accepted case on behalf of its owning client
func (s *CaseService) CloseCase(caseID, clientID string) error {
	var event CaseClosed

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		kase, err := loadCase(tx, caseID)
		if err != nil {
			return err
		}
		if kase.ClientID != clientID {
			return fmt.Errorf("%w: case %s does not belong to client %s", ErrOwnershipMismatch, caseID, clientID)
		}

		version := kase.Version
		if err := kase.Close(); err != nil {
			return err
		}

		event = CaseClosed{CaseID: kase.ID, ClientID: clientID}
		return persistCase(tx, kase, version)
	})
	if err != nil {
		return err
	}

	s.Events.Publish(event)
	return nil
}

// CancelCase cancels a case that has not been accepted yet
func (s *CaseService) CancelCase(caseID, clientID string) error {
	var event CaseCanceled

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		kase, err := loadCase(tx, caseID)
		if err != nil {
			return err
		}
		if kase.ClientID != clientID {
			return fmt.Errorf("%w: case %s does not belong to client %s", ErrOwnershipMismatch, caseID, clientID)
		}

		version := kase.Version
		if err := kase.Cancel(); err != nil {
			return err
		}

		event = CaseCanceled{CaseID: kase.ID, ClientID: clientID}
		return persistCase(tx, kase, version)
	})
	if err != nil {
		return err
	}

	s.Events.Publish(event)
	return nil
}

// GetCaseByID returns the case with all owned collections loaded
func (s *CaseService) GetCaseByID(caseID string) (*models.Case, error) {
	var kase models.Case
	err := s.DB.
		Preload("States", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Preload("Invitations").
		Preload("Applications").
		Preload("Comments").
		Preload("Specialty").
		First(&kase, "id = ?", caseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	return &kase, nil
}

// GetCasesByClient returns every case owned by the client
func (s *CaseService) GetCasesByClient(clientID string) ([]models.Case, error) {
	var cases []models.Case
	err := s.DB.Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

// GetCasesByStatus returns every case currently in the given status
func (s *CaseService) GetCasesByStatus(status string) ([]models.Case, error) {
	if !models.IsValidCaseStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	var cases []models.Case
	err := s.DB.Where("status = ?", status).
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

// GetCasesByLawyer returns the cases currently accepted by the lawyer
func (s *CaseService) GetCasesByLawyer(lawyerID string) ([]models.Case, error) {
	var cases []models.Case
	err := s.DB.Where("assigned_lawyer_id = ? AND status = ?", lawyerID, models.CaseStatusAccepted).
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

// GetSuggestedCasesForLawyer returns the open cases the lawyer has not
// already been invited to or applied to
func (s *CaseService) GetSuggestedCasesForLawyer(lawyerID string) ([]models.Case, error) {
	invited := s.DB.Model(&models.Invitation{}).
		Select("case_id").
		Where("lawyer_id = ?", lawyerID)
	applied := s.DB.Model(&models.Application{}).
		Select("case_id").
		Where("lawyer_id = ?", lawyerID)

	var cases []models.Case
	err := s.DB.Where("status = ?", models.CaseStatusOpen).
		Where("id NOT IN (?)", invited).
		Where("id NOT IN (?)", applied).
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

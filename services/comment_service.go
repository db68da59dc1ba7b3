package services

import (
	"errors"
	"fmt"
	"law_link_app_go/models"
	"strings"

	"gorm.io/gorm"
)

// CommentService manages case annotations. Final-review comments are gated
// on the case being ACCEPTED.
type CommentService struct {
	DB     *gorm.DB
	Events EventSink
}

func NewCommentService(db *gorm.DB, events EventSink) *CommentService {
	return &CommentService{DB: db, Events: events}
}

// Create appends a comment to the case
func (s *CommentService) Create(caseID, authorID, body, commentType string) (*models.Comment, error) {
	if authorID == "" {
		return nil, fmt.Errorf("%w: author id is required", ErrInvalidInput)
	}
	if !models.IsValidCommentType(commentType) {
		return nil, fmt.Errorf("%w: unknown comment type %q", ErrInvalidInput, commentType)
	}
	body = strings.TrimSpace(textPolicy.Sanitize(body))
	if body == "" {
		return nil, fmt.Errorf("%w: comment body is required", ErrInvalidInput)
	}

	var comment *models.Comment
	var event CommentCreated

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var kase models.Case
		if err := tx.First(&kase, "id = ?", caseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
			}
			return fmt.Errorf("failed to load case: %w", err)
		}

		if commentType == models.CommentTypeFinalReview && kase.Status != models.CaseStatusAccepted {
			return fmt.Errorf("%w: final review requires an accepted case, case %s is %s", models.ErrInvalidTransition, caseID, kase.Status)
		}

		comment = &models.Comment{
			CaseID:   kase.ID,
			AuthorID: authorID,
			Body:     body,
			Type:     commentType,
		}
		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		event = CommentCreated{CaseID: kase.ID, CommentID: comment.ID, AuthorID: authorID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(event)
	return comment, nil
}

// Delete removes the comment by identity.
//
// TODO: verify authorID against the comment's author once product confirms
// who is allowed to delete; the upstream workflow accepted the parameter
// without checking it.
func (s *CommentService) Delete(commentID, authorID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrCommentNotFound, commentID)
			}
			return fmt.Errorf("failed to load comment: %w", err)
		}

		if err := tx.Delete(&comment).Error; err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		return nil
	})
}

// GetCommentsByCase returns the case's comments in creation order
func (s *CommentService) GetCommentsByCase(caseID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.DB.Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// GetFinalReviewsByLawyer returns the final-review comments left on cases
// assigned to the lawyer
func (s *CommentService) GetFinalReviewsByLawyer(lawyerID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.DB.
		Joins("JOIN cases ON cases.id = comments.case_id").
		Where("comments.type = ? AND cases.assigned_lawyer_id = ?", models.CommentTypeFinalReview, lawyerID).
		Order("comments.created_at DESC").
		Find(&comments).Error
	return comments, err
}

package services

import (
	"law_link_app_go/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateComment_General(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	commentSvc := NewCommentService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)

	comment, err := commentSvc.Create(kase.ID, "client-a", "First note", models.CommentTypeGeneral)
	assert.NoError(t, err)
	assert.Equal(t, models.CommentTypeGeneral, comment.Type)

	event, ok := sink.Last().(CommentCreated)
	assert.True(t, ok)
	assert.Equal(t, comment.ID, event.CommentID)
}

func TestCreateComment_FinalReviewGate(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)
	commentSvc := NewCommentService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)

	// Final review is only constructible while the case is ACCEPTED
	_, err := commentSvc.Create(kase.ID, "client-a", "Great work", models.CommentTypeFinalReview)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")
	assert.NoError(t, appSvc.Respond(application.ID, "client-a", models.DecisionAccept))

	comment, err := commentSvc.Create(kase.ID, "client-a", "Great work", models.CommentTypeFinalReview)
	assert.NoError(t, err)
	assert.Equal(t, models.CommentTypeFinalReview, comment.Type)
}

func TestCreateComment_Validation(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	commentSvc := NewCommentService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)

	_, err := commentSvc.Create(kase.ID, "client-a", "", models.CommentTypeGeneral)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = commentSvc.Create(kase.ID, "client-a", "note", "SHOUTING")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = commentSvc.Create("missing", "client-a", "note", models.CommentTypeGeneral)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	// Markup-only bodies sanitize down to nothing
	_, err = commentSvc.Create(kase.ID, "client-a", "<script>alert(1)</script>", models.CommentTypeGeneral)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteComment(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	commentSvc := NewCommentService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	comment, _ := commentSvc.Create(kase.ID, "client-a", "note", models.CommentTypeGeneral)

	assert.NoError(t, commentSvc.Delete(comment.ID, "client-a"))

	comments, err := commentSvc.GetCommentsByCase(kase.ID)
	assert.NoError(t, err)
	assert.Len(t, comments, 0)

	err = commentSvc.Delete(comment.ID, "client-a")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestGetFinalReviewsByLawyer(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)
	commentSvc := NewCommentService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")
	assert.NoError(t, appSvc.Respond(application.ID, "client-a", models.DecisionAccept))

	commentSvc.Create(kase.ID, "client-a", "general note", models.CommentTypeGeneral)
	review, err := commentSvc.Create(kase.ID, "client-a", "excellent counsel", models.CommentTypeFinalReview)
	assert.NoError(t, err)

	reviews, err := commentSvc.GetFinalReviewsByLawyer("lawyer-b")
	assert.NoError(t, err)
	if assert.Len(t, reviews, 1) {
		assert.Equal(t, review.ID, reviews[0].ID)
	}

	reviews, err = commentSvc.GetFinalReviewsByLawyer("lawyer-z")
	assert.NoError(t, err)
	assert.Len(t, reviews, 0)
}

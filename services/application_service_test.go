package services

import (
	"law_link_app_go/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmit(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)

	application, err := appSvc.Submit(kase.ID, "lawyer-b", "cover letter")
	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, application.Status)
	assert.Equal(t, "cover letter", application.Message)

	reloaded, _ := caseSvc.GetCaseByID(kase.ID)
	assert.Equal(t, models.CaseStatusEvaluation, reloaded.Status)

	event, ok := sink.Last().(ApplicationSubmitted)
	assert.True(t, ok)
	assert.Equal(t, application.ID, event.ApplicationID)
}

func TestSubmit_CaseNotOpen(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	invSvc := NewInvitationService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	_, err := invSvc.Invite(kase.ID, "lawyer-b", "client-a")
	assert.NoError(t, err)

	// Applications, unlike invitations, cannot target a case already under
	// evaluation
	_, err = appSvc.Submit(kase.ID, "lawyer-c", "msg")
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestSubmit_CaseNotFound(t *testing.T) {
	db := setupWorkflowTestDB()
	appSvc := NewApplicationService(db, &captureSink{})

	_, err := appSvc.Submit("missing", "lawyer-b", "msg")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestApplicationRespond_Accept(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")

	assert.NoError(t, appSvc.Respond(application.ID, "client-a", models.DecisionAccept))

	reloaded, _ := caseSvc.GetCaseByID(kase.ID)
	assert.Equal(t, models.CaseStatusAccepted, reloaded.Status)
	if assert.NotNil(t, reloaded.AssignedLawyerID) {
		assert.Equal(t, "lawyer-b", *reloaded.AssignedLawyerID)
	}
	assert.Equal(t, models.ApplicationStatusAccepted, reloaded.Applications[0].Status)

	event, ok := sink.Last().(ApplicationAccepted)
	assert.True(t, ok)
	assert.Equal(t, application.ID, event.ApplicationID)
}

func TestApplicationRespond_OwnershipMismatch(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")

	err := appSvc.Respond(application.ID, "client-z", models.DecisionAccept)
	assert.ErrorIs(t, err, ErrOwnershipMismatch)

	reloaded, _ := caseSvc.GetCaseByID(kase.ID)
	assert.Equal(t, models.CaseStatusEvaluation, reloaded.Status)
	assert.Equal(t, models.ApplicationStatusSubmitted, reloaded.Applications[0].Status)
}

func TestApplicationRespond_RejectLastReopens(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")

	assert.NoError(t, appSvc.Respond(application.ID, "client-a", models.DecisionReject))

	reloaded, _ := caseSvc.GetCaseByID(kase.ID)
	assert.Equal(t, models.CaseStatusOpen, reloaded.Status)
	assert.Equal(t, models.ApplicationStatusRejected, reloaded.Applications[0].Status)

	event, ok := sink.Last().(ApplicationRejected)
	assert.True(t, ok)
	assert.Equal(t, kase.ID, event.CaseID)
}

func TestApplicationRespond_RejectWithInvitationPending(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	invSvc := NewInvitationService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")
	_, err := invSvc.Invite(kase.ID, "lawyer-c", "client-a")
	assert.NoError(t, err)

	assert.NoError(t, appSvc.Respond(application.ID, "client-a", models.DecisionReject))

	// A pending invitation keeps the case under evaluation
	reloaded, _ := caseSvc.GetCaseByID(kase.ID)
	assert.Equal(t, models.CaseStatusEvaluation, reloaded.Status)
}

func TestApplicationRespond_RejectOutsideEvaluation(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	invSvc := NewInvitationService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")
	invitation, _ := invSvc.Invite(kase.ID, "lawyer-c", "client-a")

	assert.NoError(t, invSvc.Respond(invitation.ID, "lawyer-c", models.DecisionAccept))

	// The case went to ACCEPTED through the invitation; the dangling
	// application can no longer be rejected
	err := appSvc.Respond(application.ID, "client-a", models.DecisionReject)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestApplicationRespond_AlreadyResolved(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")

	assert.NoError(t, appSvc.Respond(application.ID, "client-a", models.DecisionAccept))

	err := appSvc.Respond(application.ID, "client-a", models.DecisionAccept)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestApplicationRespond_NotFound(t *testing.T) {
	db := setupWorkflowTestDB()
	appSvc := NewApplicationService(db, &captureSink{})

	err := appSvc.Respond("missing", "client-a", models.DecisionAccept)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestGetApplicationsByCase(t *testing.T) {
	db := setupWorkflowTestDB()
	sink := &captureSink{}
	caseSvc := NewCaseService(db, sink)
	appSvc := NewApplicationService(db, sink)

	kase, _ := caseSvc.CreateCase("client-a", "Title", "desc", nil)
	application, _ := appSvc.Submit(kase.ID, "lawyer-b", "msg")

	applications, err := appSvc.GetApplicationsByCase(kase.ID)
	assert.NoError(t, err)
	if assert.Len(t, applications, 1) {
		assert.Equal(t, application.ID, applications[0].ID)
	}

	byLawyer, err := appSvc.GetApplicationsByLawyer("lawyer-b")
	assert.NoError(t, err)
	assert.Len(t, byLawyer, 1)
}

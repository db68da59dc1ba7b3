package services

import (
	"encoding/json"
	"fmt"
	"law_link_app_go/config"
	"law_link_app_go/models"
	"log"

	"gorm.io/gorm"
)

// Event is a domain event published after a command commits. Delivery is
// fire-and-forget: sinks must tolerate at-most-once semantics.
type Event interface {
	Name() string
	Case() string
}

type CaseCreated struct {
	CaseID   string `json:"case_id"`
	ClientID string `json:"client_id"`
}

func (e CaseCreated) Name() string { return "case.created" }
func (e CaseCreated) Case() string { return e.CaseID }

type CaseClosed struct {
	CaseID   string `json:"case_id"`
	ClientID string `json:"client_id"`
}

func (e CaseClosed) Name() string { return "case.closed" }
func (e CaseClosed) Case() string { return e.CaseID }

type CaseCanceled struct {
	CaseID   string `json:"case_id"`
	ClientID string `json:"client_id"`
}

func (e CaseCanceled) Name() string { return "case.canceled" }
func (e CaseCanceled) Case() string { return e.CaseID }

type LawyerInvited struct {
	CaseID       string `json:"case_id"`
	InvitationID string `json:"invitation_id"`
	ClientID     string `json:"client_id"`
	LawyerID     string `json:"lawyer_id"`
}

func (e LawyerInvited) Name() string { return "invitation.sent" }
func (e LawyerInvited) Case() string { return e.CaseID }

type InvitationAccepted struct {
	CaseID       string `json:"case_id"`
	InvitationID string `json:"invitation_id"`
	LawyerID     string `json:"lawyer_id"`
}

func (e InvitationAccepted) Name() string { return "invitation.accepted" }
func (e InvitationAccepted) Case() string { return e.CaseID }

type InvitationRejected struct {
	CaseID       string `json:"case_id"`
	InvitationID string `json:"invitation_id"`
	LawyerID     string `json:"lawyer_id"`
}

func (e InvitationRejected) Name() string { return "invitation.rejected" }
func (e InvitationRejected) Case() string { return e.CaseID }

type ApplicationSubmitted struct {
	CaseID        string `json:"case_id"`
	ApplicationID string `json:"application_id"`
	LawyerID      string `json:"lawyer_id"`
}

func (e ApplicationSubmitted) Name() string { return "application.submitted" }
func (e ApplicationSubmitted) Case() string { return e.CaseID }

type ApplicationAccepted struct {
	CaseID        string `json:"case_id"`
	ApplicationID string `json:"application_id"`
	ClientID      string `json:"client_id"`
}

func (e ApplicationAccepted) Name() string { return "application.accepted" }
func (e ApplicationAccepted) Case() string { return e.CaseID }

type ApplicationRejected struct {
	CaseID        string `json:"case_id"`
	ApplicationID string `json:"application_id"`
	ClientID      string `json:"client_id"`
}

func (e ApplicationRejected) Name() string { return "application.rejected" }
func (e ApplicationRejected) Case() string { return e.CaseID }

type CommentCreated struct {
	CaseID    string `json:"case_id"`
	CommentID string `json:"comment_id"`
	AuthorID  string `json:"author_id"`
}

func (e CommentCreated) Name() string { return "comment.created" }
func (e CommentCreated) Case() string { return e.CaseID }

// EventSink consumes published domain events. Publish must not block the
// caller on slow consumers and must never return an error to it.
type EventSink interface {
	Publish(event Event)
}

// LogSink writes every event to the standard log
type LogSink struct{}

func (LogSink) Publish(event Event) {
	payload, _ := json.Marshal(event)
	log.Printf("[EVENT] %s case=%s %s", event.Name(), event.Case(), payload)
}

// AuditSink persists events to the event_logs table asynchronously so the
// request path is never blocked on the write
type AuditSink struct {
	DB *gorm.DB
}

func NewAuditSink(db *gorm.DB) *AuditSink {
	return &AuditSink{DB: db}
}

func (s *AuditSink) Publish(event Event) {
	go func() {
		var payload string
		if bytes, err := json.Marshal(event); err == nil {
			payload = string(bytes)
		}

		entry := models.EventLog{
			Name:    event.Name(),
			CaseID:  event.Case(),
			Payload: payload,
		}

		if err := s.DB.Create(&entry).Error; err != nil {
			log.Printf("[EVENT] Failed to persist event log: %v", err)
		}
	}()
}

// EmailSink notifies the configured operations inbox of recruitment
// outcomes. Events it does not care about are dropped.
type EmailSink struct {
	Cfg *config.Config
}

func NewEmailSink(cfg *config.Config) *EmailSink {
	return &EmailSink{Cfg: cfg}
}

func (s *EmailSink) Publish(event Event) {
	if s.Cfg.NotifyEmail == "" && !s.Cfg.EmailTestMode {
		return
	}

	email := s.build(event)
	if email == nil {
		return
	}
	SendEmailAsync(s.Cfg, email)
}

// build renders the notification for the events this sink cares about;
// everything else yields nil
func (s *EmailSink) build(event Event) *Email {
	var subject string
	switch event.(type) {
	case InvitationAccepted:
		subject = "Invitation accepted"
	case ApplicationAccepted:
		subject = "Application accepted"
	case CaseClosed:
		subject = "Case closed"
	default:
		return nil
	}

	payload, _ := json.Marshal(event)
	return &Email{
		To:      []string{s.Cfg.NotifyEmail},
		Subject: fmt.Sprintf("%s (case %s)", subject, event.Case()),
		TextBody: fmt.Sprintf("Event %s\n\n%s\n\nView the case at %s/cases/%s\n",
			event.Name(), payload, s.Cfg.AppURL, event.Case()),
	}
}

// MultiSink fans an event out to every configured sink
type MultiSink struct {
	Sinks []EventSink
}

func NewMultiSink(sinks ...EventSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (s *MultiSink) Publish(event Event) {
	for _, sink := range s.Sinks {
		sink.Publish(event)
	}
}

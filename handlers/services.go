package handlers

import (
	"law_link_app_go/config"
	"law_link_app_go/services"

	"gorm.io/gorm"
)

var (
	caseService        *services.CaseService
	invitationService  *services.InvitationService
	applicationService *services.ApplicationService
	commentService     *services.CommentService
)

// Setup wires the handler package to its services. Called once from main
// after the database is initialized.
func Setup(dbConn *gorm.DB, cfg *config.Config) {
	events := services.NewMultiSink(
		services.LogSink{},
		services.NewAuditSink(dbConn),
		services.NewEmailSink(cfg),
	)

	caseService = services.NewCaseService(dbConn, events)
	invitationService = services.NewInvitationService(dbConn, events)
	applicationService = services.NewApplicationService(dbConn, events)
	commentService = services.NewCommentService(dbConn, events)
}

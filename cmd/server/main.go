package main

import (
	"law_link_app_go/config"
	"law_link_app_go/db"
	"law_link_app_go/handlers"
	"law_link_app_go/models"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	err := db.AutoMigrate(
		&models.Case{},
		&models.CaseState{},
		&models.Invitation{},
		&models.Application{},
		&models.Comment{},
		&models.LegalSpecialty{},
		&models.EventLog{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire handlers to their services
	handlers.Setup(db.DB, cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	api := e.Group("/api")
	{
		// Case lifecycle
		api.POST("/cases", handlers.CreateCaseHandler)
		api.GET("/cases", handlers.GetCasesHandler)
		api.GET("/cases/:id", handlers.GetCaseHandler)
		api.POST("/cases/:id/close", handlers.CloseCaseHandler)
		api.POST("/cases/:id/cancel", handlers.CancelCaseHandler)

		// Recruitment
		api.POST("/cases/:id/invitations", handlers.InviteLawyerHandler)
		api.GET("/cases/:id/invitations", handlers.GetCaseInvitationsHandler)
		api.POST("/invitations/:id/respond", handlers.RespondToInvitationHandler)
		api.POST("/cases/:id/applications", handlers.SubmitApplicationHandler)
		api.GET("/cases/:id/applications", handlers.GetCaseApplicationsHandler)
		api.POST("/applications/:id/respond", handlers.RespondToApplicationHandler)

		// Comments
		api.POST("/cases/:id/comments", handlers.CreateCommentHandler)
		api.GET("/cases/:id/comments", handlers.GetCaseCommentsHandler)
		api.DELETE("/comments/:id", handlers.DeleteCommentHandler)

		// Lawyer views
		api.GET("/lawyers/:id/cases", handlers.GetLawyerCasesHandler)
		api.GET("/lawyers/:id/suggested-cases", handlers.GetSuggestedCasesHandler)
		api.GET("/lawyers/:id/invitations", handlers.GetLawyerInvitationsHandler)
		api.GET("/lawyers/:id/applications", handlers.GetLawyerApplicationsHandler)
		api.GET("/lawyers/:id/final-reviews", handlers.GetLawyerFinalReviewsHandler)

		// Client views
		api.GET("/clients/:id/cases/export", handlers.ExportClientCasesHandler)
	}

	// Start server
	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

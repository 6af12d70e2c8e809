package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/api/middleware"
	"github.com/itsd-lab/vendorgate/internal/api/routes"
	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/config/db"
	"github.com/itsd-lab/vendorgate/internal/domain/attachment"
	"github.com/itsd-lab/vendorgate/internal/domain/audit"
	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"github.com/itsd-lab/vendorgate/internal/domain/survey"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"github.com/itsd-lab/vendorgate/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Object storage for form attachments
	storage.InitMinio()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&formdef.FormDefinition{},
		&submission.FormSubmission{},
		&survey.SatisfactionSurvey{},
		&attachment.Attachment{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

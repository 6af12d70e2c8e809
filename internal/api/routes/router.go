package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/api/handlers"
	"github.com/itsd-lab/vendorgate/internal/api/middleware"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/cron"
	"github.com/itsd-lab/vendorgate/internal/events"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	// Token status check endpoint (no group, but with JWT middleware)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	// init
	repos := repository.NewRepositories(gdb)
	hub := events.NewHub()
	services := application.New(repos, hub)
	h := handlers.New(services, r)
	authMiddleware := middleware.NewAuth()

	if err := services.FormDef.SeedBuiltinForms(); err != nil {
		log.Printf("Failed to seed builtin form definitions: %v", err)
	}

	// Start background tasks
	cron.StartCleanupTask(services.Audit)

	// setup
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/status", handlers.StatusStreamHandler(hub))
		auth.GET("/submissions", h.Submission.GetAllSubmissions)

		users := auth.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.PUT("/:id", authMiddleware.SelfOrAdmin(), h.User.UpdateUser)
			users.DELETE("/:id", authMiddleware.Admin(), h.User.DeleteUser)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.GET("/my", h.Project.GetMyProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.POST("", authMiddleware.Admin(), h.Project.CreateProject)
			projects.PUT("/:id", authMiddleware.Admin(), h.Project.UpdateProject)

			projects.GET("/:id/forms", h.Submission.GetVisibleForms)
			projects.GET("/:id/submissions", h.Submission.GetSubmissions)
			projects.GET("/:id/forms/:key/status", h.Submission.GetStatus)
			projects.PUT("/:id/forms/:key/draft", authMiddleware.Role(config.RoleAssessor, config.RoleAdmin), h.Submission.SaveDraft)
			projects.POST("/:id/forms/:key/submit", authMiddleware.Role(config.RoleAssessor, config.RoleAdmin), h.Submission.Submit)
			projects.POST("/:id/forms/:key/approve", authMiddleware.Role(config.RoleReviewer, config.RoleAdmin), h.Submission.Approve)
			projects.POST("/:id/forms/:key/reject", authMiddleware.Role(config.RoleReviewer, config.RoleAdmin), h.Submission.Reject)
			projects.PUT("/:id/forms/:key/status", authMiddleware.Admin(), h.Submission.OverrideStatus)

			projects.GET("/:id/forms/:key/attachments", h.Attachment.List)
			projects.POST("/:id/forms/:key/attachments", h.Attachment.Upload)

			projects.GET("/:id/surveys", h.Survey.ListByProject)
		}

		formDefs := auth.Group("/form-definitions")
		{
			formDefs.GET("", h.FormDef.ListDefinitions)
			formDefs.GET("/:key", h.FormDef.GetDefinition)
			formDefs.PUT("/:key", authMiddleware.Admin(), h.FormDef.UpdateDefinition)
		}

		reports := auth.Group("/reports")
		{
			reports.GET("/status-summary", h.Report.GetStatusSummary)
			reports.GET("/doughnut", h.Report.GetDoughnut)
			reports.GET("/workflow-steps", h.Report.GetWorkflowSteps)
			reports.GET("/projects/:id", h.Report.GetProjectProgress)
		}

		surveys := auth.Group("/surveys")
		{
			surveys.GET("", h.Survey.ListSurveys)
			surveys.POST("", h.Survey.SubmitSurvey)
			surveys.DELETE("/:id", authMiddleware.Admin(), h.Survey.DeleteSurvey)
		}

		attachments := auth.Group("/attachments")
		{
			attachments.GET("/:id", h.Attachment.Download)
			attachments.DELETE("/:id", h.Attachment.Delete)
		}

		imports := auth.Group("/imports")
		{
			imports.POST("/:table", authMiddleware.Admin(), h.Import.ImportTable)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), h.Audit.GetAuditLogs)
		}
	}
}

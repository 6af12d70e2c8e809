package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
)

type Handlers struct {
	User       *UserHandler
	Project    *ProjectHandler
	FormDef    *FormDefHandler
	Submission *SubmissionHandler
	Report     *ReportHandler
	Survey     *SurveyHandler
	Import     *ImportHandler
	Attachment *AttachmentHandler
	Audit      *AuditHandler
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Project:    NewProjectHandler(svc.Project),
		FormDef:    NewFormDefHandler(svc.FormDef),
		Submission: NewSubmissionHandler(svc.Submission),
		Report:     NewReportHandler(svc.Report),
		Survey:     NewSurveyHandler(svc.Survey),
		Import:     NewImportHandler(svc.Import),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Audit:      NewAuditHandler(svc.Audit),
		Router:     router,
	}
}

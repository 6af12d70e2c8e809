package application

import (
	"github.com/itsd-lab/vendorgate/internal/events"
	"github.com/itsd-lab/vendorgate/internal/repository"
)

type Services struct {
	User       *UserService
	Project    *ProjectService
	FormDef    *FormDefService
	Submission *SubmissionService
	Report     *ReportService
	Survey     *SurveyService
	Import     *ImportService
	Attachment *AttachmentService
	Audit      *AuditService
}

func New(repos *repository.Repos, hub *events.Hub) *Services {
	return &Services{
		User:       NewUserService(repos),
		Project:    NewProjectService(repos),
		FormDef:    NewFormDefService(repos),
		Submission: NewSubmissionService(repos, hub),
		Report:     NewReportService(repos),
		Survey:     NewSurveyService(repos),
		Import:     NewImportService(repos),
		Attachment: NewAttachmentService(repos),
		Audit:      NewAuditService(repos),
	}
}

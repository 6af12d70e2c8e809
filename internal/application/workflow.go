package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"github.com/itsd-lab/vendorgate/internal/events"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"github.com/itsd-lab/vendorgate/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrUnknownForm       = errors.New("unknown form key")
	ErrNotAssessor       = errors.New("only the assigned assessor may edit this project's forms")
	ErrNotReviewer       = errors.New("only the assigned reviewer may review this project's forms")
	ErrNotAdmin          = errors.New("admin only")
	ErrCommentRequired   = errors.New("rejection requires reviewer comments")
	ErrInvalidTransition = errors.New("submission is not in a state that allows this action")
	ErrFormGated         = errors.New("form is unavailable until service approval is granted")
	ErrIncompleteForm    = errors.New("required fields are missing")
	ErrInvalidStatus     = errors.New("invalid form status")
	ErrInvalidPayload    = errors.New("payload does not match the form definition")
)

const adminOverrideComment = "Status overridden by admin."

// SubmissionService is the workflow engine: it owns every status transition of
// a form submission and the service-approval gate.
type SubmissionService struct {
	Repos *repository.Repos
	Hub   *events.Hub
}

func NewSubmissionService(repos *repository.Repos, hub *events.Hub) *SubmissionService {
	return &SubmissionService{Repos: repos, Hub: hub}
}

// StatusOf encodes the absence rule once: no row means Not Started.
func (s *SubmissionService) StatusOf(projectID uint, formKey string) (submission.FormStatus, error) {
	sub, err := s.Repos.Submission.FindByProjectAndForm(projectID, formKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return submission.StatusNotStarted, nil
		}
		return "", err
	}
	return sub.Status, nil
}

// EffectiveStatus is the read endpoint variant of StatusOf: it refuses unknown
// projects and form keys instead of reporting them as Not Started.
func (s *SubmissionService) EffectiveStatus(projectID uint, formKey string) (submission.FormStatus, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProjectNotFound
		}
		return "", err
	}
	if _, err := s.Repos.FormDef.FindByKey(formKey); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnknownForm
		}
		return "", err
	}
	return s.StatusOf(projectID, formKey)
}

// VisibleForms applies the service-approval gate: until the gate form is
// Approved every other form is hidden, not merely disabled.
func (s *SubmissionService) VisibleForms(projectID uint) ([]submission.StatusEntry, error) {
	defs, err := s.Repos.FormDef.ListDefinitions()
	if err != nil {
		return nil, err
	}

	gateStatus, err := s.StatusOf(projectID, config.GateFormKey)
	if err != nil {
		return nil, err
	}
	gateOpen := gateStatus == submission.StatusApproved

	var entries []submission.StatusEntry
	for _, def := range defs {
		if def.Key != config.GateFormKey && !gateOpen {
			continue
		}
		status, err := s.StatusOf(projectID, def.Key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, submission.StatusEntry{
			FormKey: def.Key,
			Label:   def.Label,
			Status:  status,
		})
	}
	return entries, nil
}

// SaveDraft upserts the submission payload without advancing the review flow.
func (s *SubmissionService) SaveDraft(c *gin.Context, projectID uint, formKey string, data map[string]any) (*submission.FormSubmission, error) {
	proj, def, err := s.loadTarget(projectID, formKey)
	if err != nil {
		return nil, err
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return nil, err
	}
	if !proj.IsAssessor(uid) {
		return nil, ErrNotAssessor
	}

	sub, existing, err := s.findOrNew(projectID, formKey)
	if err != nil {
		return nil, err
	}
	if existing && sub.Status != submission.StatusDraft {
		return nil, ErrInvalidTransition
	}

	if err := s.applyPayload(&sub, def, data); err != nil {
		return nil, err
	}

	username, _ := utils.GetUserNameFromContext(c)
	sub.Status = submission.StatusDraft
	sub.SubmittedBy = username

	if err := s.Repos.Submission.Save(&sub); err != nil {
		return nil, err
	}

	s.afterTransition(c, &sub, username, "SAVE_DRAFT")
	return &sub, nil
}

// Submit moves a submission to Pending Review. Allowed from Not Started,
// Draft and Rejected; a re-submission overwrites the same row.
func (s *SubmissionService) Submit(c *gin.Context, projectID uint, formKey string, data map[string]any) (*submission.FormSubmission, error) {
	proj, def, err := s.loadTarget(projectID, formKey)
	if err != nil {
		return nil, err
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return nil, err
	}
	if !proj.IsAssessor(uid) {
		return nil, ErrNotAssessor
	}

	sub, existing, err := s.findOrNew(projectID, formKey)
	if err != nil {
		return nil, err
	}
	if existing && sub.Status != submission.StatusDraft && sub.Status != submission.StatusRejected {
		return nil, ErrInvalidTransition
	}

	if err := s.applyPayload(&sub, def, data); err != nil {
		return nil, err
	}

	payload, err := sub.Payload()
	if err != nil {
		return nil, err
	}
	if !def.IsComplete(payload) {
		return nil, ErrIncompleteForm
	}

	username, _ := utils.GetUserNameFromContext(c)
	now := time.Now()
	sub.Status = submission.StatusPendingReview
	sub.SubmittedBy = username
	sub.SubmittedAt = &now

	if err := s.Repos.Submission.Save(&sub); err != nil {
		return nil, err
	}

	s.afterTransition(c, &sub, username, "SUBMIT")
	return &sub, nil
}

// Approve moves a pending submission to Approved. Reviewer comments are
// optional here.
func (s *SubmissionService) Approve(c *gin.Context, projectID uint, formKey, comments string) (*submission.FormSubmission, error) {
	return s.review(c, projectID, formKey, submission.StatusApproved, comments)
}

// Reject moves a pending submission to Rejected and requires a non-blank
// comment; a blank comment refuses the operation with no state change.
func (s *SubmissionService) Reject(c *gin.Context, projectID uint, formKey, comments string) (*submission.FormSubmission, error) {
	if strings.TrimSpace(comments) == "" {
		return nil, ErrCommentRequired
	}
	return s.review(c, projectID, formKey, submission.StatusRejected, comments)
}

func (s *SubmissionService) review(c *gin.Context, projectID uint, formKey string, target submission.FormStatus, comments string) (*submission.FormSubmission, error) {
	proj, _, err := s.loadTarget(projectID, formKey)
	if err != nil {
		return nil, err
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return nil, err
	}
	if !proj.IsReviewer(uid) {
		return nil, ErrNotReviewer
	}

	sub, err := s.Repos.Submission.FindByProjectAndForm(projectID, formKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	if sub.Status != submission.StatusPendingReview {
		return nil, ErrInvalidTransition
	}

	username, _ := utils.GetUserNameFromContext(c)
	now := time.Now()
	sub.Status = target
	sub.ReviewedBy = username
	sub.ReviewedAt = &now
	sub.Comments = comments

	if err := s.Repos.Submission.Save(&sub); err != nil {
		return nil, err
	}

	s.afterTransition(c, &sub, username, "REVIEW")
	return &sub, nil
}

// AdminOverride forces any target status, lazily creating the row when none
// exists yet. The route is admin-gated; the role is re-checked here so the
// engine stays safe when called from elsewhere.
func (s *SubmissionService) AdminOverride(c *gin.Context, projectID uint, formKey string, target submission.FormStatus) (*submission.FormSubmission, error) {
	if _, _, err := s.loadTarget(projectID, formKey); err != nil && !errors.Is(err, ErrFormGated) {
		return nil, err
	}

	role, err := utils.GetRoleFromContext(c)
	if err != nil {
		return nil, err
	}
	if role != config.RoleAdmin {
		return nil, ErrNotAdmin
	}

	if !submission.ValidPersistedStatus(target) {
		return nil, ErrInvalidStatus
	}

	sub, _, err := s.findOrNew(projectID, formKey)
	if err != nil {
		return nil, err
	}

	username, _ := utils.GetUserNameFromContext(c)
	now := time.Now()
	sub.Status = target
	sub.ReviewedBy = username
	sub.ReviewedAt = &now
	sub.Comments = adminOverrideComment

	if err := s.Repos.Submission.Save(&sub); err != nil {
		return nil, err
	}

	s.afterTransition(c, &sub, username, "ADMIN_OVERRIDE")
	return &sub, nil
}

func (s *SubmissionService) ListByProject(projectID uint) ([]submission.FormSubmission, error) {
	return s.Repos.Submission.FindByProject(projectID)
}

func (s *SubmissionService) ListAll() ([]submission.FormSubmission, error) {
	return s.Repos.Submission.FindAll()
}

// ListForUser scopes the submission listing the same way project listing is
// scoped: assessors and reviewers see their assigned projects only.
func (s *SubmissionService) ListForUser(uid uint, role string) ([]submission.FormSubmission, error) {
	var (
		projects []project.Project
		err      error
	)
	switch role {
	case config.RoleAssessor:
		projects, err = s.Repos.Project.ListProjectsByAssessor(uid)
	case config.RoleReviewer:
		projects, err = s.Repos.Project.ListProjectsByReviewer(uid)
	default:
		return s.Repos.Submission.FindAll()
	}
	if err != nil {
		return nil, err
	}

	var subs []submission.FormSubmission
	for _, p := range projects {
		ps, err := s.Repos.Submission.FindByProject(p.PID)
		if err != nil {
			return nil, err
		}
		subs = append(subs, ps...)
	}
	return subs, nil
}

// loadTarget resolves the project and form definition and applies the gate to
// mutating operations on non-gate forms.
func (s *SubmissionService) loadTarget(projectID uint, formKey string) (project.Project, formdef.Definition, error) {
	proj, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project.Project{}, formdef.Definition{}, ErrProjectNotFound
		}
		return project.Project{}, formdef.Definition{}, err
	}

	fd, err := s.Repos.FormDef.FindByKey(formKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project.Project{}, formdef.Definition{}, ErrUnknownForm
		}
		return project.Project{}, formdef.Definition{}, err
	}
	def, err := fd.Schema()
	if err != nil {
		return project.Project{}, formdef.Definition{}, err
	}

	if formKey != config.GateFormKey {
		gateStatus, err := s.StatusOf(projectID, config.GateFormKey)
		if err != nil {
			return project.Project{}, formdef.Definition{}, err
		}
		if gateStatus != submission.StatusApproved {
			return proj, def, ErrFormGated
		}
	}

	return proj, def, nil
}

func (s *SubmissionService) findOrNew(projectID uint, formKey string) (submission.FormSubmission, bool, error) {
	sub, err := s.Repos.Submission.FindByProjectAndForm(projectID, formKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return submission.FormSubmission{ProjectID: projectID, FormKey: formKey}, false, nil
		}
		return submission.FormSubmission{}, false, err
	}
	return sub, true, nil
}

func (s *SubmissionService) applyPayload(sub *submission.FormSubmission, def formdef.Definition, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if err := def.ValidatePayload(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	def.EnsureRiskID(data)
	return sub.SetPayload(data)
}

func (s *SubmissionService) afterTransition(c *gin.Context, sub *submission.FormSubmission, actor, action string) {
	if s.Hub != nil {
		s.Hub.Publish(events.StatusEvent{
			ProjectID: sub.ProjectID,
			FormKey:   sub.FormKey,
			Status:    sub.Status,
			Actor:     actor,
		})
	}
	utils.LogAuditWithConsole(c, action, "form_submission",
		fmt.Sprintf("%d_%s", sub.ProjectID, sub.FormKey),
		nil, sub, string(sub.Status), s.Repos.Audit)
}

package application_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"github.com/itsd-lab/vendorgate/internal/events"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"github.com/itsd-lab/vendorgate/internal/repository/mock"
	"github.com/itsd-lab/vendorgate/pkg/types"
	"github.com/itsd-lab/vendorgate/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const (
	assessorUID = uint(10)
	reviewerUID = uint(20)
	adminUID    = uint(30)
)

// --------------------- Setup ---------------------

type workflowMocks struct {
	svc     *application.SubmissionService
	sub     *mock.MockSubmissionRepo
	proj    *mock.MockProjectRepo
	formDef *mock.MockFormDefRepo
	hub     *events.Hub
}

func setupWorkflowMocks(t *testing.T) workflowMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSub := mock.NewMockSubmissionRepo(ctrl)
	mockProject := mock.NewMockProjectRepo(ctrl)
	mockFormDef := mock.NewMockFormDefRepo(ctrl)

	repos := &repository.Repos{
		Submission: mockSub,
		Project:    mockProject,
		FormDef:    mockFormDef,
	}

	// audit writes are out of scope here
	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	hub := events.NewHub()
	return workflowMocks{
		svc:     application.NewSubmissionService(repos, hub),
		sub:     mockSub,
		proj:    mockProject,
		formDef: mockFormDef,
		hub:     hub,
	}
}

func ctxWithClaims(uid uint, username, role string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", nil)
	c.Set("claims", &types.Claims{UserID: uid, Username: username, Role: role})
	return c
}

func assessorCtx() *gin.Context { return ctxWithClaims(assessorUID, "alice", config.RoleAssessor) }
func reviewerCtx() *gin.Context { return ctxWithClaims(reviewerUID, "rex", config.RoleReviewer) }
func adminCtx() *gin.Context    { return ctxWithClaims(adminUID, "root", config.RoleAdmin) }

func testProject() project.Project {
	return project.Project{PID: 1, ProjectName: "Vendor X", AssessorID: assessorUID, ReviewerID: reviewerUID}
}

func gateFormRow(t *testing.T) formdef.FormDefinition {
	t.Helper()
	fd := formdef.FormDefinition{Key: config.GateFormKey, Label: "Service Approval", HasSignatures: false}
	err := fd.SetSchema([]formdef.Topic{
		{No: "1", Title: "Service name", FieldKey: "serviceName", InputType: formdef.InputText, Required: true},
		{No: "2", Title: "Justification", FieldKey: "justification", InputType: formdef.InputTextarea},
	})
	assert.NoError(t, err)
	return fd
}

func riskFormRow(t *testing.T) formdef.FormDefinition {
	t.Helper()
	fd := formdef.FormDefinition{Key: "riskAssessment", Label: "Risk Assessment"}
	err := fd.SetSchema([]formdef.Topic{
		{No: "1", Title: "Risk ID", FieldKey: formdef.RiskIDFieldKey, InputType: formdef.InputText},
		{No: "2", Title: "Description", FieldKey: "description", InputType: formdef.InputTextarea, Required: true},
	})
	assert.NoError(t, err)
	return fd
}

func (m workflowMocks) expectGateStatus(status submission.FormStatus) {
	if status == submission.StatusNotStarted {
		m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
			Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)
		return
	}
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{ProjectID: 1, FormKey: config.GateFormKey, Status: status}, nil)
}

// --------------------- StatusOf ---------------------

func TestStatusOf_AbsenceMeansNotStarted(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.sub.EXPECT().FindByProjectAndForm(uint(1), "riskAssessment").
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)

	status, err := m.svc.StatusOf(1, "riskAssessment")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusNotStarted, status)
}

// --------------------- SaveDraft ---------------------

func TestSaveDraft_CreatesDraftRow(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)

	var saved submission.FormSubmission
	m.sub.EXPECT().Save(gomock.Any()).Do(func(s *submission.FormSubmission) {
		saved = *s
	}).Return(nil)

	sub, err := m.svc.SaveDraft(assessorCtx(), 1, config.GateFormKey, map[string]any{"serviceName": "CRM"})
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusDraft, sub.Status)
	assert.Equal(t, "alice", saved.SubmittedBy)
	assert.Equal(t, uint(1), saved.ProjectID)
}

func TestSaveDraft_ReviewerIsRefused(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)

	_, err := m.svc.SaveDraft(reviewerCtx(), 1, config.GateFormKey, nil)
	assert.ErrorIs(t, err, application.ErrNotAssessor)
}

func TestSaveDraft_PendingReviewIsLocked(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{Status: submission.StatusPendingReview}, nil)

	_, err := m.svc.SaveDraft(assessorCtx(), 1, config.GateFormKey, map[string]any{"serviceName": "CRM"})
	assert.ErrorIs(t, err, application.ErrInvalidTransition)
}

func TestSaveDraft_UnknownPayloadKeyIsRejected(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)

	_, err := m.svc.SaveDraft(assessorCtx(), 1, config.GateFormKey, map[string]any{"nope": "x"})
	assert.ErrorIs(t, err, application.ErrInvalidPayload)
}

// --------------------- Gate ---------------------

func TestGate_BlocksOtherFormsUntilApproved(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey("riskAssessment").Return(riskFormRow(t), nil)
	m.expectGateStatus(submission.StatusPendingReview)

	_, err := m.svc.SaveDraft(assessorCtx(), 1, "riskAssessment", nil)
	assert.ErrorIs(t, err, application.ErrFormGated)
}

func TestGate_OpensAfterApproval(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey("riskAssessment").Return(riskFormRow(t), nil)
	m.expectGateStatus(submission.StatusApproved)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), "riskAssessment").
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)
	m.sub.EXPECT().Save(gomock.Any()).Return(nil)

	sub, err := m.svc.SaveDraft(assessorCtx(), 1, "riskAssessment", map[string]any{"description": "x"})
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusDraft, sub.Status)
}

func TestVisibleForms_HidesGatedFormsEntirely(t *testing.T) {
	m := setupWorkflowMocks(t)

	defs := []formdef.FormDefinition{gateFormRow(t), riskFormRow(t)}
	m.formDef.EXPECT().ListDefinitions().Return(defs, nil)
	// gate status lookup, then per-form lookup for the gate entry itself
	m.expectGateStatus(submission.StatusDraft)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{Status: submission.StatusDraft}, nil)

	entries, err := m.svc.VisibleForms(1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, config.GateFormKey, entries[0].FormKey)
	assert.Equal(t, submission.StatusDraft, entries[0].Status)
}

func TestVisibleForms_AllFormsWhenGateApproved(t *testing.T) {
	m := setupWorkflowMocks(t)

	defs := []formdef.FormDefinition{gateFormRow(t), riskFormRow(t)}
	m.formDef.EXPECT().ListDefinitions().Return(defs, nil)
	m.expectGateStatus(submission.StatusApproved)
	m.expectGateStatus(submission.StatusApproved)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), "riskAssessment").
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)

	entries, err := m.svc.VisibleForms(1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, submission.StatusNotStarted, entries[1].Status)
}

// --------------------- Submit ---------------------

func TestSubmit_IncompleteFormIsRefused(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)

	_, err := m.svc.Submit(assessorCtx(), 1, config.GateFormKey, map[string]any{"justification": "because"})
	assert.ErrorIs(t, err, application.ErrIncompleteForm)
}

func TestSubmit_MovesToPendingReview(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)

	published := m.hub.Subscribe()
	defer m.hub.Unsubscribe(published)

	var saved submission.FormSubmission
	m.sub.EXPECT().Save(gomock.Any()).Do(func(s *submission.FormSubmission) {
		saved = *s
	}).Return(nil)

	sub, err := m.svc.Submit(assessorCtx(), 1, config.GateFormKey, map[string]any{"serviceName": "CRM"})
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusPendingReview, sub.Status)
	assert.NotNil(t, saved.SubmittedAt)

	ev := <-published
	assert.Equal(t, submission.StatusPendingReview, ev.Status)
	assert.Equal(t, config.GateFormKey, ev.FormKey)
}

func TestSubmit_RejectedFormCanBeResubmitted(t *testing.T) {
	m := setupWorkflowMocks(t)

	existing := submission.FormSubmission{
		ID: 7, ProjectID: 1, FormKey: config.GateFormKey,
		Status: submission.StatusRejected, Comments: "fix the dates",
	}

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).Return(existing, nil)

	var saved submission.FormSubmission
	m.sub.EXPECT().Save(gomock.Any()).Do(func(s *submission.FormSubmission) {
		saved = *s
	}).Return(nil)

	_, err := m.svc.Submit(assessorCtx(), 1, config.GateFormKey, map[string]any{"serviceName": "CRM v2"})
	assert.NoError(t, err)
	// same row is overwritten, never a second one
	assert.Equal(t, uint(7), saved.ID)
	assert.Equal(t, submission.StatusPendingReview, saved.Status)
}

func TestSubmit_ApprovedFormIsImmutable(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{Status: submission.StatusApproved}, nil)

	_, err := m.svc.Submit(assessorCtx(), 1, config.GateFormKey, map[string]any{"serviceName": "CRM"})
	assert.ErrorIs(t, err, application.ErrInvalidTransition)
}

func TestSubmit_PopulatesRiskID(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey("riskAssessment").Return(riskFormRow(t), nil)
	m.expectGateStatus(submission.StatusApproved)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), "riskAssessment").
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)
	m.sub.EXPECT().Save(gomock.Any()).Return(nil)

	sub, err := m.svc.Submit(assessorCtx(), 1, "riskAssessment", map[string]any{"description": "data exposure"})
	assert.NoError(t, err)

	payload, err := sub.Payload()
	assert.NoError(t, err)
	assert.Regexp(t, `^RISK-\d{6}$`, payload[formdef.RiskIDFieldKey])
}

// --------------------- Review ---------------------

func TestReject_BlankCommentRefusedWithoutStateChange(t *testing.T) {
	m := setupWorkflowMocks(t)

	_, err := m.svc.Reject(reviewerCtx(), 1, config.GateFormKey, "   ")
	assert.ErrorIs(t, err, application.ErrCommentRequired)
}

func TestReject_StoresReviewerComment(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{ProjectID: 1, FormKey: config.GateFormKey, Status: submission.StatusPendingReview}, nil)

	var saved submission.FormSubmission
	m.sub.EXPECT().Save(gomock.Any()).Do(func(s *submission.FormSubmission) {
		saved = *s
	}).Return(nil)

	sub, err := m.svc.Reject(reviewerCtx(), 1, config.GateFormKey, "dates are inconsistent")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusRejected, sub.Status)
	assert.Equal(t, "dates are inconsistent", saved.Comments)
	assert.Equal(t, "rex", saved.ReviewedBy)
	assert.NotNil(t, saved.ReviewedAt)
}

func TestApprove_OnlyFromPendingReview(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{Status: submission.StatusDraft}, nil)

	_, err := m.svc.Approve(reviewerCtx(), 1, config.GateFormKey, "")
	assert.ErrorIs(t, err, application.ErrInvalidTransition)
}

func TestApprove_AssessorIsRefused(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)

	_, err := m.svc.Approve(assessorCtx(), 1, config.GateFormKey, "")
	assert.ErrorIs(t, err, application.ErrNotReviewer)
}

func TestApprove_Succeeds(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{ProjectID: 1, FormKey: config.GateFormKey, Status: submission.StatusPendingReview}, nil)
	m.sub.EXPECT().Save(gomock.Any()).Return(nil)

	sub, err := m.svc.Approve(reviewerCtx(), 1, config.GateFormKey, "")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusApproved, sub.Status)
}

// --------------------- Admin override ---------------------

func TestAdminOverride_CreatesRowLazily(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey("riskAssessment").Return(riskFormRow(t), nil)
	// gate is closed; override tolerates it
	m.expectGateStatus(submission.StatusNotStarted)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), "riskAssessment").
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)

	var saved submission.FormSubmission
	m.sub.EXPECT().Save(gomock.Any()).Do(func(s *submission.FormSubmission) {
		saved = *s
	}).Return(nil)

	sub, err := m.svc.AdminOverride(adminCtx(), 1, "riskAssessment", submission.StatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusCompleted, sub.Status)
	assert.Equal(t, "Status overridden by admin.", saved.Comments)
}

func TestAdminOverride_RejectsVirtualStatus(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)

	_, err := m.svc.AdminOverride(adminCtx(), 1, config.GateFormKey, submission.StatusNotStarted)
	assert.ErrorIs(t, err, application.ErrInvalidStatus)
}

func TestAdminOverride_NonAdminIsRefused(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)

	_, err := m.svc.AdminOverride(assessorCtx(), 1, config.GateFormKey, submission.StatusApproved)
	assert.ErrorIs(t, err, application.ErrNotAdmin)
}

func TestWorkflow_UnknownFormAndProject(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(9)).Return(project.Project{}, gorm.ErrRecordNotFound)
	_, err := m.svc.SaveDraft(assessorCtx(), 9, config.GateFormKey, nil)
	assert.ErrorIs(t, err, application.ErrProjectNotFound)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey("nope").Return(formdef.FormDefinition{}, gorm.ErrRecordNotFound)
	_, err = m.svc.SaveDraft(assessorCtx(), 1, "nope", nil)
	assert.ErrorIs(t, err, application.ErrUnknownForm)
}

func TestListForUser_ScopesByRole(t *testing.T) {
	m := setupWorkflowMocks(t)

	t.Run("admin sees everything", func(t *testing.T) {
		m.sub.EXPECT().FindAll().Return([]submission.FormSubmission{{ID: 1}, {ID: 2}}, nil)
		subs, err := m.svc.ListForUser(adminUID, config.RoleAdmin)
		assert.NoError(t, err)
		assert.Len(t, subs, 2)
	})

	t.Run("assessor sees assigned projects only", func(t *testing.T) {
		m.proj.EXPECT().ListProjectsByAssessor(assessorUID).Return([]project.Project{{PID: 1}, {PID: 3}}, nil)
		m.sub.EXPECT().FindByProject(uint(1)).Return([]submission.FormSubmission{{ID: 1, ProjectID: 1}}, nil)
		m.sub.EXPECT().FindByProject(uint(3)).Return(nil, nil)

		subs, err := m.svc.ListForUser(assessorUID, config.RoleAssessor)
		assert.NoError(t, err)
		assert.Len(t, subs, 1)
		assert.Equal(t, uint(1), subs[0].ProjectID)
	})
}

func TestEffectiveStatus_RefusesUnknownTargets(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.proj.EXPECT().GetProjectByID(uint(9)).Return(project.Project{}, gorm.ErrRecordNotFound)
	_, err := m.svc.EffectiveStatus(9, config.GateFormKey)
	assert.ErrorIs(t, err, application.ErrProjectNotFound)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey("nope").Return(formdef.FormDefinition{}, gorm.ErrRecordNotFound)
	_, err = m.svc.EffectiveStatus(1, "nope")
	assert.ErrorIs(t, err, application.ErrUnknownForm)

	m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
	m.formDef.EXPECT().FindByKey(config.GateFormKey).Return(gateFormRow(t), nil)
	m.sub.EXPECT().FindByProjectAndForm(uint(1), config.GateFormKey).
		Return(submission.FormSubmission{}, gorm.ErrRecordNotFound)
	status, err := m.svc.EffectiveStatus(1, config.GateFormKey)
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusNotStarted, status)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"github.com/itsd-lab/vendorgate/pkg/response"
	"github.com/itsd-lab/vendorgate/pkg/utils"
)

type SubmissionHandler struct {
	svc *application.SubmissionService
}

func NewSubmissionHandler(svc *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// writeWorkflowError maps the workflow sentinel errors onto HTTP statuses so
// every transition endpoint answers consistently.
func writeWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProjectNotFound),
		errors.Is(err, application.ErrUnknownForm):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotAssessor),
		errors.Is(err, application.ErrNotReviewer),
		errors.Is(err, application.ErrNotAdmin):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrFormGated),
		errors.Is(err, application.ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrCommentRequired),
		errors.Is(err, application.ErrIncompleteForm),
		errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, application.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

// GetVisibleForms godoc
// @Summary List forms visible for a project with their effective statuses
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} submission.StatusEntry
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/forms [get]
func (h *SubmissionHandler) GetVisibleForms(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	entries, err := h.svc.VisibleForms(projectID)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetSubmissions godoc
// @Summary List all submissions of a project
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} submission.FormSubmission
// @Router /projects/{id}/submissions [get]
func (h *SubmissionHandler) GetSubmissions(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	subs, err := h.svc.ListByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GetAllSubmissions godoc
// @Summary List submissions across projects, scoped by the caller's role
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} submission.FormSubmission
// @Router /submissions [get]
func (h *SubmissionHandler) GetAllSubmissions(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, err := h.svc.ListForUser(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GetStatus godoc
// @Summary Get the effective status of one form for a project
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Success 200 {object} map[string]string
// @Router /projects/{id}/forms/{key}/status [get]
func (h *SubmissionHandler) GetStatus(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	status, err := h.svc.EffectiveStatus(projectID, c.Param("key"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// SaveDraft godoc
// @Summary Save form data without submitting
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Param input body submission.SavePayloadDTO true "Form data"
// @Success 200 {object} submission.FormSubmission
// @Failure 403 {object} response.ErrorResponse "Not the assigned assessor"
// @Failure 409 {object} response.ErrorResponse "Form is not editable in its current status"
// @Router /projects/{id}/forms/{key}/draft [put]
func (h *SubmissionHandler) SaveDraft(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.SavePayloadDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.svc.SaveDraft(c, projectID, c.Param("key"), input.Data)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Submit godoc
// @Summary Submit a form for review
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Param input body submission.SavePayloadDTO true "Form data"
// @Success 200 {object} submission.FormSubmission
// @Failure 400 {object} response.ErrorResponse "Required fields are missing"
// @Failure 403 {object} response.ErrorResponse "Not the assigned assessor"
// @Router /projects/{id}/forms/{key}/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.SavePayloadDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.svc.Submit(c, projectID, c.Param("key"), input.Data)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Approve godoc
// @Summary Approve a pending submission
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Param input body submission.ReviewDTO false "Optional reviewer comments"
// @Success 200 {object} submission.FormSubmission
// @Failure 403 {object} response.ErrorResponse "Not the assigned reviewer"
// @Failure 409 {object} response.ErrorResponse "Submission is not pending review"
// @Router /projects/{id}/forms/{key}/approve [post]
func (h *SubmissionHandler) Approve(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	// comments are optional on approval, an empty body is fine
	var input submission.ReviewDTO
	_ = c.ShouldBindJSON(&input)

	sub, err := h.svc.Approve(c, projectID, c.Param("key"), input.Comments)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Reject godoc
// @Summary Reject a pending submission back to the assessor
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Param input body submission.ReviewDTO true "Reviewer comments (required)"
// @Success 200 {object} submission.FormSubmission
// @Failure 400 {object} response.ErrorResponse "Comments are required for rejection"
// @Failure 403 {object} response.ErrorResponse "Not the assigned reviewer"
// @Router /projects/{id}/forms/{key}/reject [post]
func (h *SubmissionHandler) Reject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.ReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.svc.Reject(c, projectID, c.Param("key"), input.Comments)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// OverrideStatus godoc
// @Summary Force a submission into an arbitrary persisted status
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Param input body submission.OverrideStatusDTO true "Target status"
// @Success 200 {object} submission.FormSubmission
// @Failure 400 {object} response.ErrorResponse "Invalid form status"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /projects/{id}/forms/{key}/status [put]
func (h *SubmissionHandler) OverrideStatus(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input submission.OverrideStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.svc.AdminOverride(c, projectID, c.Param("key"), submission.FormStatus(input.Status))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

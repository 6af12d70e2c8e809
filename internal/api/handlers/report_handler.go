package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/pkg/response"
	"github.com/itsd-lab/vendorgate/pkg/utils"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GetStatusSummary godoc
// @Summary Status counts over every (project, form) pair
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} application.StatusSummary
// @Router /reports/status-summary [get]
func (h *ReportHandler) GetStatusSummary(c *gin.Context) {
	summary, err := h.svc.StatusCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDoughnut godoc
// @Summary Status summary rendered as doughnut chart segments
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {array} application.Segment
// @Router /reports/doughnut [get]
func (h *ReportHandler) GetDoughnut(c *gin.Context) {
	summary, err := h.svc.StatusCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, application.DoughnutSegments(summary))
}

// GetWorkflowSteps godoc
// @Summary One aggregated status per workflow step across all projects
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {array} application.WorkflowStep
// @Router /reports/workflow-steps [get]
func (h *ReportHandler) GetWorkflowSteps(c *gin.Context) {
	steps, err := h.svc.WorkflowSteps()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, steps)
}

// GetProjectProgress godoc
// @Summary Per-form statuses for one project
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} submission.StatusEntry
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /reports/projects/{id} [get]
func (h *ReportHandler) GetProjectProgress(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	entries, err := h.svc.ProjectProgress(projectID)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, entries)
}

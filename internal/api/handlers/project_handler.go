package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/pkg/response"
	"github.com/itsd-lab/vendorgate/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjects godoc
// @Summary List all projects
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.Project
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetMyProjects godoc
// @Summary List projects assigned to the caller
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.Project
// @Router /projects/my [get]
func (h *ProjectHandler) GetMyProjects(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	projects, err := h.svc.ListProjectsForUser(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get one project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	p, err := h.svc.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.CreateProjectDTO true "Project info"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid input or assignee role"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.CreateProject(c, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAssessorRole), errors.Is(err, application.ErrReviewerRole):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Assigned user does not exist"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param input body project.UpdateProjectDTO true "Fields to update"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.UpdateProject(c, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		case errors.Is(err, application.ErrAssessorRole), errors.Is(err, application.ErrReviewerRole):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Assigned user does not exist"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

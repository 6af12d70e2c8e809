package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/domain/survey"
	"github.com/itsd-lab/vendorgate/pkg/response"
	"github.com/itsd-lab/vendorgate/pkg/utils"
)

type SurveyHandler struct {
	svc *application.SurveyService
}

func NewSurveyHandler(svc *application.SurveyService) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

// ListSurveys godoc
// @Summary List all satisfaction surveys
// @Tags surveys
// @Security BearerAuth
// @Produce json
// @Success 200 {array} survey.SatisfactionSurvey
// @Router /surveys [get]
func (h *SurveyHandler) ListSurveys(c *gin.Context) {
	surveys, err := h.svc.ListSurveys()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// ListByProject godoc
// @Summary List surveys for one project
// @Tags surveys
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} survey.SatisfactionSurvey
// @Router /projects/{id}/surveys [get]
func (h *SurveyHandler) ListByProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	surveys, err := h.svc.ListSurveysByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// SubmitSurvey godoc
// @Summary Submit a satisfaction survey for a project
// @Tags surveys
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body survey.SubmitSurveyDTO true "Survey answers"
// @Success 201 {object} survey.SatisfactionSurvey
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /surveys [post]
func (h *SurveyHandler) SubmitSurvey(c *gin.Context) {
	var input survey.SubmitSurveyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	username, err := utils.GetUserNameFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sv, err := h.svc.SubmitSurvey(username, input)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, sv)
}

// DeleteSurvey godoc
// @Summary Delete a survey
// @Tags surveys
// @Security BearerAuth
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} response.MessageResponse "Survey deleted"
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) DeleteSurvey(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.svc.DeleteSurvey(id); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Survey deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"github.com/itsd-lab/vendorgate/pkg/response"
)

type FormDefHandler struct {
	svc *application.FormDefService
}

func NewFormDefHandler(svc *application.FormDefService) *FormDefHandler {
	return &FormDefHandler{svc: svc}
}

// ListDefinitions godoc
// @Summary List all form definitions in display order
// @Tags form-definitions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} formdef.FormDefinition
// @Router /form-definitions [get]
func (h *FormDefHandler) ListDefinitions(c *gin.Context) {
	defs, err := h.svc.ListDefinitions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, defs)
}

// GetDefinition godoc
// @Summary Get one form definition with its full schema
// @Tags form-definitions
// @Security BearerAuth
// @Produce json
// @Param key path string true "Form key"
// @Success 200 {object} formdef.FormDefinition
// @Failure 404 {object} response.ErrorResponse "Form definition not found"
// @Router /form-definitions/{key} [get]
func (h *FormDefHandler) GetDefinition(c *gin.Context) {
	def, err := h.svc.GetByKey(c.Param("key"))
	if err != nil {
		if errors.Is(err, application.ErrFormDefNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form definition not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, def)
}

// UpdateDefinition godoc
// @Summary Update a form definition schema
// @Tags form-definitions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Form key"
// @Param input body formdef.UpdateFormDefinitionDTO true "Schema changes"
// @Success 200 {object} formdef.FormDefinition
// @Failure 400 {object} response.ErrorResponse "Schema is invalid"
// @Failure 404 {object} response.ErrorResponse "Form definition not found"
// @Router /form-definitions/{key} [put]
func (h *FormDefHandler) UpdateDefinition(c *gin.Context) {
	var input formdef.UpdateFormDefinitionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.svc.UpdateDefinition(c.Param("key"), input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrFormDefNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form definition not found"})
		default:
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, def)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/pkg/response"
	"github.com/itsd-lab/vendorgate/pkg/utils"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Upload godoc
// @Summary Upload an evidence file for one form of a project
// @Tags attachments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Param file formData file true "File to upload"
// @Success 201 {object} attachment.Attachment
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/forms/{key}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	username, err := utils.GetUserNameFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	a, err := h.svc.Upload(c.Request.Context(), projectID, c.Param("key"), fileHeader.Filename, contentType, username, file, fileHeader.Size)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, a)
}

// List godoc
// @Summary List attachments for one form of a project
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Param key path string true "Form key"
// @Success 200 {array} attachment.Attachment
// @Router /projects/{id}/forms/{key}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	attachments, err := h.svc.List(projectID, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// Download godoc
// @Summary Download an attachment
// @Tags attachments
// @Security BearerAuth
// @Produce octet-stream
// @Param id path int true "Attachment ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /attachments/{id} [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	a, data, err := h.svc.Download(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrAttachmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Attachment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+a.FileName+`"`)
	c.Data(http.StatusOK, a.ContentType, data)
}

// Delete godoc
// @Summary Delete an attachment
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Attachment ID"
// @Success 200 {object} response.MessageResponse "Attachment deleted"
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrAttachmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Attachment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/pkg/response"
)

type ImportHandler struct {
	svc *application.ImportService
}

func NewImportHandler(svc *application.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// ImportTable godoc
// @Summary Replace a registry table from an uploaded CSV file
// @Description Without confirm=true only a preview with warnings is returned.
// @Description With confirm=true the whole table is overwritten atomically.
// @Tags imports
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param table path string true "Target table (users or projects)"
// @Param file formData file true "CSV file with header row"
// @Param confirm query bool false "Apply the import instead of previewing"
// @Success 200 {object} application.ImportPreview
// @Failure 400 {object} response.ErrorResponse "Malformed CSV or missing required column"
// @Failure 404 {object} response.ErrorResponse "Unknown import table"
// @Router /imports/{table} [post]
func (h *ImportHandler) ImportTable(c *gin.Context) {
	table := c.Param("table")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "CSV file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	preview, err := h.svc.Preview(table, file)
	if err != nil {
		if errors.Is(err, application.ErrUnknownImportTable) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusOK, preview)
		return
	}

	if err := h.svc.Apply(preview); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table":    preview.Table,
		"imported": len(preview.Rows),
		"warnings": preview.Warnings,
	})
}

package transport

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetExport returns the metadata of an archived export.
func (h *EditorHandler) GetExport(c *gin.Context) {
	record, err := h.service.GetExport(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *EditorHandler) GetExportImage(c *gin.Context) {
	data, err := h.service.GetExportImage(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.service.ExportFilename()))
	c.Data(http.StatusOK, "image/png", data)
}

func (h *EditorHandler) DeleteExport(c *gin.Context) {
	if err := h.service.DeleteExport(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *EditorHandler) UploadBackground(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	file, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, entity.ErrImageTooLarge)
			return
		}
		abortWithError(c, entity.ErrNoImageFile)
		return
	}

	src, err := file.Open()
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp, err := h.service.UploadBackground(c.Param("id"), data)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFrame serves the editing view with guide lines. Without a background there is
// nothing to draw and the response is empty.
func (h *EditorHandler) GetFrame(c *gin.Context) {
	width := 0
	if raw := c.Query("width"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 0 {
			abortWithError(c, fmt.Errorf("%w: width %q", entity.ErrInvalidInput, raw))
			return
		}
		width = w
	}

	data, err := h.service.Frame(c.Request.Context(), c.Param("id"), width)
	if errors.Is(err, entity.ErrNoBackground) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", data)
}

// Export downloads the composited image at native resolution without guide lines.
func (h *EditorHandler) Export(c *gin.Context) {
	data, exportID, err := h.service.Export(c.Request.Context(), c.Param("id"))
	if errors.Is(err, entity.ErrNoBackground) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	if exportID != "" {
		c.Header("X-Export-ID", exportID)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.service.ExportFilename()))
	c.Data(http.StatusOK, "image/png", data)
}

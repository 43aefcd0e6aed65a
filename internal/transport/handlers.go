package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/service"
	"github.com/gin-gonic/gin"
)

type EditorHandler struct {
	service        service.EditorService
	maxUploadBytes int64
}

func NewEditorHandler(service service.EditorService, maxUploadBytes int64) *EditorHandler {
	return &EditorHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound), errors.Is(err, entity.ErrExportNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrNoBackground), errors.Is(err, entity.ErrNoTextLayer):
		return http.StatusConflict
	case errors.Is(err, entity.ErrUnsupportedImageType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, entity.ErrDecodeFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, entity.ErrNoImageFile),
		errors.Is(err, entity.ErrInvalidFontSize),
		errors.Is(err, entity.ErrInvalidFontWeight),
		errors.Is(err, entity.ErrUnknownFontFamily),
		errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}

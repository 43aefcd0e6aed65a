package transport

import (
	"net/http"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/pkg/processor"
	"github.com/gin-gonic/gin"
)

func (h *EditorHandler) CreateSession(c *gin.Context) {
	id := h.service.CreateSession()
	c.JSON(http.StatusCreated, entity.CreateSessionResponse{ID: id})
}

func (h *EditorHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *EditorHandler) DeleteSession(c *gin.Context) {
	if err := h.service.DeleteSession(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}

func (h *EditorHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, entity.OptionsResponse{
		FontSizes:    entity.FontSizes,
		FontFamilies: entity.FontFamilies,
		FontWeights:  entity.FontWeights,
		Accept:       processor.AcceptedTypes,
	})
}

package transport

import (
	"net/http"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *EditorHandler) AddText(c *gin.Context) {
	layer, created, err := h.service.AddText(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, layer)
}

func (h *EditorHandler) EditText(c *gin.Context) {
	var edit entity.TextEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	layer, err := h.service.EditText(c.Param("id"), edit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, layer)
}

func (h *EditorHandler) ToggleMode(c *gin.Context) {
	mode, err := h.service.ToggleMoveMode(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mode": mode})
}

func (h *EditorHandler) KeyDown(c *gin.Context) {
	var req entity.KeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondMove(c)(h.service.KeyDown(c.Param("id"), req.Key))
}

func (h *EditorHandler) PointerDown(c *gin.Context) {
	var req entity.PointerDownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondMove(c)(h.service.PointerDown(c.Param("id"), req))
}

func (h *EditorHandler) PointerMove(c *gin.Context) {
	var req entity.PointerMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondMove(c)(h.service.PointerMove(c.Param("id"), req))
}

func (h *EditorHandler) PointerUp(c *gin.Context) {
	h.respondMove(c)(h.service.PointerUp(c.Param("id")))
}

func (h *EditorHandler) respondMove(c *gin.Context) func(*entity.MoveResponse, error) {
	return func(resp *entity.MoveResponse, err error) {
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

package transport

import (
	"github.com/ds124wfegd/catchcraft/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(editorHandler *EditorHandler, requestTimeout int) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	// API routes
	api := router.Group("/api/v1")
	{
		sessions := api.Group("/sessions")
		{
			sessions.POST("", editorHandler.CreateSession)
			sessions.GET("/:id", editorHandler.GetSession)
			sessions.DELETE("/:id", editorHandler.DeleteSession)

			sessions.POST("/:id/background", editorHandler.UploadBackground)
			sessions.POST("/:id/text", editorHandler.AddText)
			sessions.PATCH("/:id/text", editorHandler.EditText)
			sessions.POST("/:id/mode", editorHandler.ToggleMode)

			sessions.POST("/:id/keys", editorHandler.KeyDown)
			sessions.POST("/:id/pointer/down", editorHandler.PointerDown)
			sessions.POST("/:id/pointer/move", editorHandler.PointerMove)
			sessions.POST("/:id/pointer/up", editorHandler.PointerUp)

			sessions.GET("/:id/frame", editorHandler.GetFrame)
			sessions.GET("/:id/export", editorHandler.Export)
		}

		exports := api.Group("/exports")
		{
			exports.GET("/:id", editorHandler.GetExport)
			exports.GET("/:id/image", editorHandler.GetExportImage)
			exports.DELETE("/:id", editorHandler.DeleteExport)
		}

		api.GET("/options", editorHandler.GetOptions)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "catchcraft",
		})
	})

	return router
}

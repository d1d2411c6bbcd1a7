package router

import (
	"net/http"

	"github.com/moneygate/tool-service/handler"
	"github.com/moneygate/tool-service/metrics"
	"github.com/moneygate/tool-service/middleware"

	"github.com/gin-gonic/gin"
)

func Setup(toolHandler *handler.ToolHandler) *gin.Engine {
	r := gin.Default()
	r.Use(metrics.PrometheusMiddleware("tool-service"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", middleware.UserIdentity())
	{
		api.POST("/tools/spreadsheet", toolHandler.GenerateSpreadsheet)
		api.POST("/tools/document", toolHandler.GenerateDocument)
		api.GET("/tools", toolHandler.ListTools)
		api.GET("/tools/templates", toolHandler.ListTemplates)
		api.GET("/tools/:id", toolHandler.GetTool)
		api.DELETE("/tools/:id", toolHandler.DeleteTool)
	}
	return r
}

package handler

import (
	"errors"
	"net/http"

	"github.com/moneygate/tool-service/generator"
	"github.com/moneygate/tool-service/service"
	"github.com/moneygate/tool-service/template"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ToolHandler struct {
	svc    service.ToolService
	logger *logrus.Logger
}

func NewToolHandler(svc service.ToolService, logger *logrus.Logger) *ToolHandler {
	return &ToolHandler{svc: svc, logger: logger}
}

// GenerateSpreadsheet 生成表格工具
// POST /api/tools/spreadsheet
func (h *ToolHandler) GenerateSpreadsheet(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var opts generator.SpreadsheetOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}
	if opts.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	tool, err := h.svc.GenerateSpreadsheet(c.Request.Context(), ownerID, opts)
	if err != nil {
		h.writeError(c, "GenerateSpreadsheet", err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"tool_id":  tool.ID,
		"template": opts.TemplateID,
	}).Info("spreadsheet generated")
	c.JSON(http.StatusCreated, tool)
}

// GenerateDocument 生成文档工具
// POST /api/tools/document
func (h *ToolHandler) GenerateDocument(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var opts generator.DocumentOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}
	if opts.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	tool, err := h.svc.GenerateDocument(c.Request.Context(), ownerID, opts)
	if err != nil {
		h.writeError(c, "GenerateDocument", err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"tool_id":  tool.ID,
		"template": opts.TemplateID,
	}).Info("document generated")
	c.JSON(http.StatusCreated, tool)
}

// ListTools 列出当前用户的所有工具
// GET /api/tools
func (h *ToolHandler) ListTools(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	tools, err := h.svc.ListTools(c.Request.Context(), ownerID)
	if err != nil {
		h.writeError(c, "ListTools", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tools": tools, "total": len(tools)})
}

// GetTool 获取单个工具
// GET /api/tools/:id
func (h *ToolHandler) GetTool(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	tool, err := h.svc.GetTool(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.writeError(c, "GetTool", err)
		return
	}

	c.JSON(http.StatusOK, tool)
}

// DeleteTool 删除工具及其文件
// DELETE /api/tools/:id
func (h *ToolHandler) DeleteTool(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteTool(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		h.writeError(c, "DeleteTool", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListTemplates 列出可用模板
// GET /api/tools/templates
func (h *ToolHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": template.Catalog()})
}

func (h *ToolHandler) writeError(c *gin.Context, op string, err error) {
	h.logger.WithError(err).Warnf("%s failed", op)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
	case errors.Is(err, service.ErrSynthesis):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customization options", "detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func ownerFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	ownerID, ok := v.(string)
	if !ok || ownerID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user_id format"})
		return "", false
	}
	return ownerID, true
}

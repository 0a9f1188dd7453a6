package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/middleware"
)

// assistantHandler exposes the AI features. All three endpoints are thin
// pass-throughs; the assistant has no access to stored user data.
type assistantHandler struct {
	assistantService portssvc.AssistantSvcFacade
}

// registerAssistantRoutes registers the assistant routes.
func registerAssistantRoutes(rg *gin.RouterGroup, as portssvc.AssistantSvcFacade) {
	h := &assistantHandler{assistantService: as}

	assistant := rg.Group("/assistant")
	{
		assistant.POST("/chat", h.chat)
		assistant.POST("/search", h.search)
		assistant.POST("/receipt", h.analyzeReceipt)
	}
}

func (h *assistantHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	text, err := h.assistantService.Chat(c.Request.Context(), req.Prompt)
	if err != nil {
		logger.Error("Assistant chat failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Assistant is unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Text: text})
}

func (h *assistantHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.assistantService.Search(c.Request.Context(), req.Query)
	if err != nil {
		logger.Error("Assistant search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Search is unavailable"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *assistantHandler) analyzeReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AnalyzeReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	details, err := h.assistantService.AnalyzeReceipt(c.Request.Context(), req.Image)
	if err != nil {
		logger.Error("Receipt analysis failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Receipt analysis is unavailable"})
		return
	}

	c.JSON(http.StatusOK, details)
}

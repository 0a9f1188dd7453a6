package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/middleware"
)

// ratesHandler exposes the exchange-rate table.
type ratesHandler struct {
	ratesService portssvc.RatesSvcFacade
}

// registerRatesRoutes registers the exchange-rate routes.
func registerRatesRoutes(rg *gin.RouterGroup, rs portssvc.RatesSvcFacade) {
	h := &ratesHandler{ratesService: rs}

	rates := rg.Group("/rates")
	{
		rates.GET("", h.current)
		rates.POST("/refresh", h.refresh)
	}
}

func (h *ratesHandler) current(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToRateTableResponse(h.ratesService.Current(), h.ratesService.LastRefreshedAt()))
}

// refresh triggers an on-demand rate refresh. A failed refresh keeps the
// previous table; the client is told and can keep using the stale rates.
func (h *ratesHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.ratesService.Refresh(c.Request.Context())
	if err != nil {
		logger.Warn("On-demand rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Rate refresh failed; previous rates remain in effect"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateTableResponse(table, h.ratesService.LastRefreshedAt()))
}

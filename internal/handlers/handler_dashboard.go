package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/middleware"
)

// dashboardHandler serves the read-only aggregation endpoints.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
	ratesService     portssvc.RatesSvcFacade
	prefService      portssvc.PreferenceSvcFacade
}

func newDashboardHandler(rps portssvc.ReportingSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		reportingService: rps,
		ratesService:     rs,
		prefService:      ps,
	}
}

// registerDashboardRoutes registers the dashboard aggregation routes.
func registerDashboardRoutes(rg *gin.RouterGroup, rps portssvc.ReportingSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) {
	h := newDashboardHandler(rps, rs, ps)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/categories", h.categories)
		dashboard.GET("/upcoming-bills", h.upcomingBills)
	}
}

func (h *dashboardHandler) summary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	totals, err := h.reportingService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute summary")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	c.JSON(http.StatusOK, dto.ToSummaryResponse(totals, h.ratesService.Current(), currency))
}

func (h *dashboardHandler) categories(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	breakdown, err := h.reportingService.CategoryBreakdown(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute category breakdown")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	c.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(breakdown, h.ratesService.Current(), currency))
}

func (h *dashboardHandler) upcomingBills(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	upcoming, err := h.reportingService.UpcomingBills(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondServiceError(c, err, "Failed to load upcoming bills")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	rates := h.ratesService.Current()
	resp := dto.UpcomingBillsResponse{Bills: make([]dto.BillResponse, 0, len(upcoming))}
	for _, bill := range upcoming {
		resp.Bills = append(resp.Bills, dto.ToUpcomingBillResponse(bill, rates, currency))
	}
	c.JSON(http.StatusOK, resp)
}

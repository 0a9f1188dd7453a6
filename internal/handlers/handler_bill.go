package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/middleware"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService  portssvc.BillSvcFacade
	ratesService portssvc.RatesSvcFacade
	prefService  portssvc.PreferenceSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) *billHandler {
	return &billHandler{
		billService:  bs,
		ratesService: rs,
		prefService:  ps,
	}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, bs portssvc.BillSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) {
	h := newBillHandler(bs, rs, ps)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.POST("/:billID/pay", h.payBill)
		bills.DELETE("/:billID", h.deleteBill)
	}
}

func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	bill, err := h.billService.CreateBill(c.Request.Context(), userID, req, currency)
	if err != nil {
		respondServiceError(c, err, "Failed to create bill")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillResponse(bill, h.ratesService.Current(), currency))
}

func (h *billHandler) listBills(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list bills")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	rates := h.ratesService.Current()
	resp := dto.ListBillsResponse{Bills: make([]dto.BillResponse, 0, len(bills))}
	for i := range bills {
		resp.Bills = append(resp.Bills, dto.ToBillResponse(&bills[i], rates, currency))
	}
	c.JSON(http.StatusOK, resp)
}

// payBill settles a bill. The request body is optional; when present it may
// name the account to draw the settlement from.
func (h *billHandler) payBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayBillRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for payBill", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, settlement, err := h.billService.PayBill(c.Request.Context(), userID, c.Param("billID"), req.AccountID)
	if err != nil {
		respondServiceError(c, err, "Failed to pay bill")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	rates := h.ratesService.Current()
	c.JSON(http.StatusOK, dto.PayBillResponse{
		Bill:       dto.ToBillResponse(bill, rates, currency),
		Settlement: dto.ToTransactionResponse(settlement, rates, currency),
	})
}

func (h *billHandler) deleteBill(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), userID, c.Param("billID")); err != nil {
		respondServiceError(c, err, "Failed to delete bill")
		return
	}

	c.Status(http.StatusNoContent)
}

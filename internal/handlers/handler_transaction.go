package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to ledger transactions.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	ratesService  portssvc.RatesSvcFacade
	prefService   portssvc.PreferenceSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
		ratesService:  rs,
		prefService:   ps,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) {
	h := newTransactionHandler(ls, rs, ps)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), userID, req, currency, false)
	if err != nil {
		respondServiceError(c, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, h.ratesService.Current(), currency))
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions, h.ratesService.Current(), currency),
	})
}

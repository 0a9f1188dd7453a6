package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	ratesService   portssvc.RatesSvcFacade
	prefService    portssvc.PreferenceSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		ratesService:   rs,
		prefService:    ps,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, rs portssvc.RatesSvcFacade, ps portssvc.PreferenceSvcFacade) {
	h := newAccountHandler(as, rs, ps)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	account, err := h.accountService.CreateAccount(c.Request.Context(), userID, req, currency)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account, h.ratesService.Current(), currency))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	rates := h.ratesService.Current()
	resp := dto.ListAccountsResponse{Accounts: make([]dto.AccountResponse, 0, len(accounts))}
	for i := range accounts {
		resp.Accounts = append(resp.Accounts, dto.ToAccountResponse(&accounts[i], rates, currency))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), userID, c.Param("accountID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve account")
		return
	}

	currency := displayCurrency(c, h.prefService, userID)
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, h.ratesService.Current(), currency))
}

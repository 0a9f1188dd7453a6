package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/middleware"
	"github.com/finanza-app/finanza-backend/pkg/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Everything else requires a valid token
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account, services.Rates, services.Preference)
	registerTransactionRoutes(v1, services.Ledger, services.Rates, services.Preference)
	registerBillRoutes(v1, services.Bill, services.Rates, services.Preference)
	registerDashboardRoutes(v1, services.Reporting, services.Rates, services.Preference)
	registerRatesRoutes(v1, services.Rates)
	registerAssistantRoutes(v1, services.Assistant)
	registerSettingsRoutes(v1, services.Preference)
}

// respondServiceError maps service-layer sentinel errors to HTTP statuses.
// fallbackMsg is used for unexpected errors so internals never leak.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}

// displayCurrency resolves the currency amounts are presented in: the
// ?currency= query parameter when it names a supported currency, otherwise
// the user's saved preference, otherwise the base currency.
func displayCurrency(c *gin.Context, prefs portssvc.PreferenceSvcFacade, userID string) string {
	if requested := c.Query("currency"); requested != "" {
		for _, code := range domain.SupportedCurrencies {
			if requested == code {
				return requested
			}
		}
	}
	if prefs != nil {
		if saved, err := prefs.GetPreferences(c.Request.Context(), userID); err == nil && saved.Currency != "" {
			return saved.Currency
		}
	}
	return domain.BaseCurrency
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/middleware"
)

// settingsHandler manages per-user presentation settings.
type settingsHandler struct {
	prefService portssvc.PreferenceSvcFacade
}

// registerSettingsRoutes registers the preference routes.
func registerSettingsRoutes(rg *gin.RouterGroup, ps portssvc.PreferenceSvcFacade) {
	h := &settingsHandler{prefService: ps}

	preferences := rg.Group("/preferences")
	{
		preferences.GET("", h.getPreferences)
		preferences.PUT("", h.updatePreferences)
	}
}

func (h *settingsHandler) getPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	prefs, err := h.prefService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *settingsHandler) updatePreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	prefs, err := h.prefService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}

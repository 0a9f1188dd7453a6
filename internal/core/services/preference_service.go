package services

import (
	"context"
	"log/slog"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
)

const (
	prefKeyCurrency = "currency"
	prefKeyTheme    = "theme"

	defaultTheme = "light"
)

// PreferenceService manages per-user presentation settings.
type PreferenceService struct {
	BaseService
	prefRepo portsrepo.PreferenceRepository
}

var _ portssvc.PreferenceSvcFacade = (*PreferenceService)(nil)

func NewPreferenceService(prefRepo portsrepo.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo}
}

// GetPreferences returns the user's settings, falling back to the base
// currency and the light theme for anything not yet set.
func (s *PreferenceService) GetPreferences(ctx context.Context, userID string) (dto.PreferencesResponse, error) {
	prefs, err := s.prefRepo.GetPreferences(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load preferences", slog.String("user_id", userID))
		return dto.PreferencesResponse{}, err
	}
	return preferencesFromMap(prefs), nil
}

// UpdatePreferences persists the non-empty fields of the request and returns
// the resulting settings.
func (s *PreferenceService) UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (dto.PreferencesResponse, error) {
	if req.Currency != "" {
		if err := s.prefRepo.SetPreference(ctx, userID, prefKeyCurrency, req.Currency); err != nil {
			s.LogError(ctx, err, "Failed to update currency preference", slog.String("user_id", userID))
			return dto.PreferencesResponse{}, err
		}
	}
	if req.Theme != "" {
		if err := s.prefRepo.SetPreference(ctx, userID, prefKeyTheme, req.Theme); err != nil {
			s.LogError(ctx, err, "Failed to update theme preference", slog.String("user_id", userID))
			return dto.PreferencesResponse{}, err
		}
	}
	return s.GetPreferences(ctx, userID)
}

func preferencesFromMap(prefs map[string]string) dto.PreferencesResponse {
	out := dto.PreferencesResponse{
		Currency: domain.BaseCurrency,
		Theme:    defaultTheme,
	}
	if currency, ok := prefs[prefKeyCurrency]; ok && currency != "" {
		out.Currency = currency
	}
	if theme, ok := prefs[prefKeyTheme]; ok && theme != "" {
		out.Theme = theme
	}
	return out
}

package dto

// PreferencesResponse is the user's persisted presentation settings.
type PreferencesResponse struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
}

// UpdatePreferencesRequest updates one or both settings. Empty fields are
// left unchanged.
type UpdatePreferencesRequest struct {
	Currency string `json:"currency" binding:"omitempty,currencycode"`
	Theme    string `json:"theme" binding:"omitempty,oneof=light dark"`
}

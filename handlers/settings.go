package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/manojvns/billdesk/models"
	"github.com/manojvns/billdesk/store"
)

// GetSettings retrieves the company settings
// @Summary      Get settings
// @Description  Company identity, bank details, tax defaults, document number prefixes and display formats.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  Response{data=models.Settings}
// @Router       /settings [get]
// @Security     BasicAuth
func GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := currentSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// UpdateSettings replaces the company settings
// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings  body      models.SettingsInput  true  "New settings"
// @Success      200       {object}  Response{data=models.Settings}
// @Failure      400       {object}  Response{error=string}
// @Router       /settings [put]
// @Security     BasicAuth
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input models.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := store.UpdateSettings(r.Context(), DB, input); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	settingsCache.Delete(settingsCacheKey)

	s, err := store.GetSettings(r.Context(), DB)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s)
}

package routes

import (
	"encoding/json"
	"net/http"

	"perfume-logistics/internal/session"
)

func StateHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Snapshot())
	}
}

func HistoryHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.History())
	}
}

func GetSettingsHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Settings())
	}
}

func SaveSettingsHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings session.ThresholdSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		s.SaveSettings(r.Context(), settings)
		writeJSON(w, http.StatusOK, s.Settings())
	}
}

type SampleRequest struct {
	Enabled bool `json:"enabled"`
}

func SampleModeHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SampleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		writeJSON(w, http.StatusOK, s.ToggleSampleMode(req.Enabled))
	}
}

package routes

import (
	"encoding/json"
	"net/http"

	"perfume-logistics/internal/alerts"
	"perfume-logistics/internal/session"
)

type DispatchRequest struct {
	Alerts          []alerts.Alert `json:"alerts"`
	SlackChannel    string         `json:"slackChannel"`
	EmailRecipients []string       `json:"emailRecipients"`
}

func DispatchHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DispatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// Caller-side guard: dispatching nothing is meaningless.
		if len(req.Alerts) == 0 {
			writeError(w, http.StatusBadRequest, "at least one alert must be selected")
			return
		}

		result, err := s.Dispatch(r.Context(), req.Alerts, req.SlackChannel, req.EmailRecipients)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

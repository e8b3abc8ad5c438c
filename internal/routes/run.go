package routes

import (
	"net/http"

	"perfume-logistics/internal/session"
)

func RunHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := s.RunCheck(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

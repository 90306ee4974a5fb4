package handlers

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// respondWithError writes a JSON:API error body. Code and title are derived
// from the status text, so 503 becomes SERVICE_UNAVAILABLE.
func respondWithError(w http.ResponseWriter, code int, message string) {
	title := http.StatusText(code)
	if title == "" {
		code = http.StatusInternalServerError
		title = http.StatusText(code)
	}
	errorCode := strings.ToUpper(strings.ReplaceAll(title, " ", "_"))

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

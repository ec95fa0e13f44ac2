package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/kwfeed/pkg/domain"
)

// errBadRequest marks errors caused by request parameters
var errBadRequest = errors.New("bad request")

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	defaultTTL, minTTL := s.config.TTLBounds()
	status := map[string]any{
		"status":      "ok",
		"version":     s.version,
		"time":        time.Now().UTC(),
		"default_ttl": int(defaultTTL.Seconds()),
		"min_ttl":     int(minTTL.Seconds()),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// statusCode maps feed errors to http status codes
func statusCode(err error) int {
	var (
		timeoutErr   *domain.ScrapeTimeoutError
		markupErr    *domain.MarkupNotFoundError
		exhaustedErr *domain.ExhaustedVocabularyError
	)
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout
	case errors.As(err, &markupErr):
		return http.StatusBadGateway
	case errors.As(err, &exhaustedErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

package http

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the Cross-Origin Resource Sharing settings of the API.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API. "*" allows any
	// origin and "*.example.com" any subdomain of example.com.
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string

	// MaxAge is the Access-Control-Max-Age value in seconds.
	MaxAge int
}

// NewCORSConfig returns the defaults used by the server for the given
// origins. An empty list allows any origin.
func NewCORSConfig(origins []string) CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept", "Accept-Encoding", "Content-Encoding", hashHeader, traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         86400,
	}
}

func (h *Handler) withCORS(next http.Handler) http.Handler {
	cfg := h.cors

	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	exposed := strings.Join(cfg.ExposedHeaders, ", ")
	maxAge := ""
	if cfg.MaxAge > 0 {
		maxAge = strconv.Itoa(cfg.MaxAge)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// same-origin request
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !isOriginAllowed(origin, cfg.AllowedOrigins) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
		if exposed != "" {
			w.Header().Set("Access-Control-Expose-Headers", exposed)
		}

		// preflight
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
			if maxAge != "" {
				w.Header().Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	origin = strings.ToLower(origin)

	for _, allowed := range allowedOrigins {
		allowed = strings.ToLower(strings.TrimSpace(allowed))

		switch {
		case allowed == "*":
			return true
		case allowed == origin:
			return true
		case strings.HasPrefix(allowed, "*."):
			suffix := strings.TrimPrefix(allowed, "*")
			if !strings.HasSuffix(origin, suffix) {
				continue
			}
			// the suffix keeps its leading dot, so "notexample.com" never
			// matches; the scheme must still be followed by a host label
			prefix := strings.TrimSuffix(origin, suffix)
			if strings.Contains(prefix, "://") && !strings.HasSuffix(prefix, "://") {
				return true
			}
		}
	}

	return false
}

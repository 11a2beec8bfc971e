package restapi

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the JSON API and the health check.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/lines.json", api.linesHandler)
	router.HandlerFunc(http.MethodGet, "/api/lines/:code", api.lineHandler)
	router.HandlerFunc(http.MethodGet, "/api/languages.json", api.languagesHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthzHandler)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPIPath(r.URL.Path) {
			api.sendNotFound(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

// WithMiddleware wraps handler in the middleware chain, outermost first:
// request logging, security headers, rate limiting, compression and the
// reader's language.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = api.LanguageMiddleware(handler)
	handler = CompressionMiddleware(handler)
	handler = api.rateLimiter(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}

package restapi

import (
	"net/http"

	"github.com/LHMTR/haruto-information/internal/app"
	"github.com/LHMTR/haruto-information/internal/multilingual"
)

// LanguageMiddleware reads the reader's language once per request and stores
// it in the request context. A language chosen with ?lang= is also persisted
// in the cookie.
func (api *RestAPI) LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang, fromQuery := api.RequestLanguage(r)
		if fromQuery {
			app.SetLanguageCookie(w, lang)
		}

		w.Header().Set("Content-Language", lang.Tag().String())
		w.Header().Add("Vary", "Cookie")

		next.ServeHTTP(w, r.WithContext(multilingual.WithLanguage(r.Context(), lang)))
	})
}

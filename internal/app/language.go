package app

import (
	"net/http"
	"time"

	"github.com/LHMTR/haruto-information/internal/multilingual"
)

const (
	// LanguageCookie stores the reader's language between visits.
	LanguageCookie = "preferred_lang"
	// LanguageParam overrides the cookie for a single request.
	LanguageParam = "lang"

	languageCookieMaxAge = 365 * 24 * time.Hour
)

// RequestLanguage returns the reader's language: a valid ?lang= value wins,
// then the preferred_lang cookie, then the configured default. fromQuery
// reports whether the query parameter decided it.
func (app *Application) RequestLanguage(r *http.Request) (lang multilingual.Language, fromQuery bool) {
	if code := r.URL.Query().Get(LanguageParam); code != "" {
		if lang, ok := multilingual.ParseLanguage(code); ok {
			return lang, true
		}
	}

	if cookie, err := r.Cookie(LanguageCookie); err == nil {
		if lang, ok := multilingual.ParseLanguage(cookie.Value); ok {
			return lang, false
		}
	}

	return app.Config.Language(), false
}

// LanguageCookieFor builds the cookie that persists lang.
func LanguageCookieFor(lang multilingual.Language) *http.Cookie {
	return &http.Cookie{
		Name:     LanguageCookie,
		Value:    lang.Code(),
		Path:     "/",
		MaxAge:   int(languageCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetLanguageCookie persists lang on the response.
func SetLanguageCookie(w http.ResponseWriter, lang multilingual.Language) {
	http.SetCookie(w, LanguageCookieFor(lang))
}

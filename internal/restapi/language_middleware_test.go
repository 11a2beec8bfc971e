package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LHMTR/haruto-information/internal/app"
	"github.com/LHMTR/haruto-information/internal/multilingual"
)

func TestLanguageMiddleware(t *testing.T) {
	api := createTestApi(t)

	var seen multilingual.Language
	handler := api.LanguageMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = multilingual.FromContext(r.Context())
	}))

	t.Run("query parameter is stored in the cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?lang=ko", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, multilingual.Korean, seen)
		assert.Equal(t, "ko", rec.Header().Get("Content-Language"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, app.LanguageCookie, cookies[0].Name)
		assert.Equal(t, "ko", cookies[0].Value)
	})

	t.Run("cookie is read but not rewritten", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: app.LanguageCookie, Value: "zh-hant"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, multilingual.TraditionalChinese, seen)
		assert.Equal(t, "zh-Hant", rec.Header().Get("Content-Language"))
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("configured default", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, multilingual.SimplifiedChinese, seen)
		assert.Equal(t, "Cookie", rec.Header().Get("Vary"))
	})
}

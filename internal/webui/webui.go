// Package webui renders the line list and line detail pages as HTML.
package webui

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/LHMTR/haruto-information/internal/app"
	"github.com/LHMTR/haruto-information/internal/appconf"
	"github.com/LHMTR/haruto-information/internal/catalog"
	"github.com/LHMTR/haruto-information/internal/directory"
	"github.com/LHMTR/haruto-information/internal/logging"
	"github.com/LHMTR/haruto-information/internal/multilingual"
	"github.com/LHMTR/haruto-information/internal/utils"
)

type WebUI struct {
	*app.Application
	renderer *Renderer
}

// NewWebUI creates the HTML front end of application.
func NewWebUI(application *app.Application) (*WebUI, error) {
	renderer, err := NewRenderer(application.Messages)
	if err != nil {
		return nil, err
	}
	return &WebUI{Application: application, renderer: renderer}, nil
}

// SetRoutes registers the HTML pages. The debug page is only served in
// development.
func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.directoryHandler)
	router.HandlerFunc(http.MethodGet, "/information/:code", webUI.lineHandler)
	router.HandlerFunc(http.MethodGet, "/lang/:lang", webUI.languageHandler)

	if webUI.Config.Env == appconf.Development {
		router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	}
}

func (webUI *WebUI) directoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := multilingual.FromContext(ctx)
	logger := logging.FromContext(ctx)

	query, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("q"))
	if err != nil {
		logger.Debug("ignoring invalid search query", slog.String("error", err.Error()))
		query = ""
	}
	opts := directory.Options{
		Query:    query,
		GroupBy:  directory.ParseGroupBy(r.URL.Query().Get("group")),
		Language: lang,
	}

	lines, loadErr := webUI.Catalog.LoadIndex(ctx)
	status := http.StatusOK
	if loadErr != nil {
		logging.LogError(logger, "failed to load line index", loadErr,
			slog.String("component", "webui"))
		status = http.StatusBadGateway
	}

	page := webUI.renderer.DirectoryPageFor(webUI.renderer.NewPage(lang, ServerLinks{}, ""), lines, opts, loadErr)
	page.Searchable = true
	webUI.writePage(w, r, status, func(buf io.Writer) error {
		return webUI.renderer.RenderDirectory(buf, page)
	})
}

func (webUI *WebUI) lineHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := multilingual.FromContext(ctx)
	logger := logging.FromContext(ctx)
	code := utils.ExtractIDFromParams(r, "code")

	base := webUI.renderer.NewPage(lang, ServerLinks{}, code)
	page := LinePage{Page: base, Code: code}
	status := http.StatusOK

	detail, err := webUI.Catalog.LoadLine(ctx, code)
	switch {
	case errors.Is(err, catalog.ErrLineNotFound), errors.Is(err, catalog.ErrInvalidLineCode):
		page.NotFound = true
		status = http.StatusNotFound
	case err != nil:
		logging.LogError(logger, "failed to load line", err,
			slog.String("line_code", code),
			slog.String("component", "webui"))
		page.LoadFailed = true
		status = http.StatusBadGateway
	default:
		page = webUI.renderer.LinePageFor(base, detail)
	}

	webUI.writePage(w, r, status, func(buf io.Writer) error {
		return webUI.renderer.RenderLine(buf, page)
	})
}

// languageHandler stores the chosen language and sends the reader back to the
// page given in ?next=.
func (webUI *WebUI) languageHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := multilingual.ParseLanguage(httprouter.ParamsFromContext(r.Context()).ByName("lang"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	app.SetLanguageCookie(w, lang)
	http.Redirect(w, r, redirectTarget(r.URL.Query().Get("next"), lang), http.StatusSeeOther)
}

// redirectTarget keeps next when it is a local path and adds lang to it.
func redirectTarget(next string, lang multilingual.Language) string {
	target := &url.URL{Path: "/"}
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.HasPrefix(next, "/\\") {
		if u, err := url.Parse(next); err == nil && u.Scheme == "" && u.Host == "" {
			target = u
		}
	}

	query := target.Query()
	query.Set(app.LanguageParam, lang.Code())
	target.RawQuery = query.Encode()
	target.Fragment = ""
	return target.String()
}

func (webUI *WebUI) writePage(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	logger := logging.FromContext(r.Context())

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.LogError(logger, "failed to render page", err,
			slog.String("path", r.URL.Path),
			slog.String("component", "webui"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(logger, "failed to write page", err,
			slog.String("path", r.URL.Path),
			slog.String("component", "webui"))
	}
}

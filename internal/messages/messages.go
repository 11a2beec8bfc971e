// Package messages holds the fixed interface strings (error notices, labels,
// placeholders) in every supported language.
package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/LHMTR/haruto-information/internal/multilingual"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message ids.
const (
	SiteTitle         = "SiteTitle"
	Loading           = "Loading"
	LoadFailed        = "LoadFailed"
	ListLoadFailed    = "ListLoadFailed"
	NoStations        = "NoStations"
	NoTrains          = "NoTrains"
	NoMatchingLines   = "NoMatchingLines"
	BackToList        = "BackToList"
	Depot             = "Depot"
	Platform          = "Platform"
	BuiltBy           = "BuiltBy"
	GroupByCompany    = "GroupByCompany"
	GroupByService    = "GroupByService"
	SearchPlaceholder = "SearchPlaceholder"
	LineNotFound      = "LineNotFound"
	Language          = "Language"
)

// Catalog translates message ids into the reader's language.
type Catalog struct {
	bundle *i18n.Bundle
	logger *slog.Logger
}

// NewCatalog loads the embedded message files.
func NewCatalog(logger *slog.Logger) (*Catalog, error) {
	bundle := i18n.NewBundle(language.SimplifiedChinese)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("listing message files: %w", err)
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("loading message file %s: %w", path, err)
		}
	}

	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{bundle: bundle, logger: logger}, nil
}

// Localize returns the text of id in lang. Missing translations fall back to
// the simplified Chinese text, and unknown ids to the id itself.
func (c *Catalog) Localize(lang multilingual.Language, id string, data map[string]any) string {
	localizer := i18n.NewLocalizer(c.bundle, lang.Tag().String())

	text, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		c.logger.Warn("message lookup failed",
			slog.String("message_id", id),
			slog.String("lang", lang.Code()),
			slog.String("error", err.Error()))
		return id
	}
	return text
}

// Printer binds a catalog to one language for use in templates.
type Printer struct {
	catalog *Catalog
	lang    multilingual.Language
}

// Printer returns a Printer for lang.
func (c *Catalog) Printer(lang multilingual.Language) Printer {
	return Printer{catalog: c, lang: lang}
}

// T translates id.
func (p Printer) T(id string) string {
	return p.catalog.Localize(p.lang, id, nil)
}

// With translates id, filling the template variable key with value.
func (p Printer) With(id, key, value string) string {
	return p.catalog.Localize(p.lang, id, map[string]any{key: value})
}

// Lang returns the printer's language.
func (p Printer) Lang() multilingual.Language {
	return p.lang
}

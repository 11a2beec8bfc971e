package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/LHMTR/haruto-information/internal/colors"
	"github.com/LHMTR/haruto-information/internal/directory"
	"github.com/LHMTR/haruto-information/internal/messages"
	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/multilingual"
	"github.com/LHMTR/haruto-information/internal/stations"
)

//go:embed templates/*.html
var templateFS embed.FS

// Style values are built from validated hex colors only, so they are marked
// as safe CSS; html/template would otherwise reject the gradients.
var templateFuncs = template.FuncMap{
	"color":     cssColor,
	"marker":    markerCSS,
	"connector": connectorCSS,
	"percent":   percentCSS,
}

func cssColor(c string) template.CSS {
	return template.CSS(colors.OrDefault(c, colors.Neutral))
}

func markerCSS(v stations.Visual) template.CSS {
	return template.CSS(stations.MarkerBackground(safeVisual(v)))
}

func connectorCSS(c *stations.Connector) template.CSS {
	if c == nil {
		return ""
	}
	return template.CSS(stations.ConnectorBackground(safeConnector(*c)))
}

func percentCSS(p float64) template.CSS {
	return template.CSS(fmt.Sprintf("%.4g%%", p))
}

// safeVisual replaces every color that is not a hex color with the neutral grey.
func safeVisual(v stations.Visual) stations.Visual {
	v.MarkerTop = colors.OrDefault(v.MarkerTop, colors.Neutral)
	v.MarkerBottom = colors.OrDefault(v.MarkerBottom, colors.Neutral)
	if v.Connector != nil {
		c := safeConnector(*v.Connector)
		v.Connector = &c
	}
	return v
}

func safeConnector(c stations.Connector) stations.Connector {
	return stations.Connector{
		Top:    colors.OrDefault(c.Top, colors.Neutral),
		Bottom: colors.OrDefault(c.Bottom, colors.Neutral),
	}
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Code   string
	Name   string
	URL    string
	Active bool
}

// Page carries what every page needs: the reader's language, the message
// printer for it and the language switcher.
type Page struct {
	Lang      multilingual.Language
	Msg       messages.Printer
	Languages []LanguageOption

	links Links
}

// LineURL links to the detail page of a line.
func (p Page) LineURL(code string) string {
	return p.links.Line(code, p.Lang)
}

// DirectoryURL links back to the line list.
func (p Page) DirectoryURL() string {
	return p.links.Directory(p.Lang)
}

// DirectoryPage is the data of the line list page.
type DirectoryPage struct {
	Page
	View       directory.View
	LoadFailed bool
	// Searchable shows the search and grouping form.
	Searchable bool
}

// LinePage is the data of a line detail page.
type LinePage struct {
	Page
	Code       string
	Line       *models.ResolvedLineDetail
	LoadFailed bool
	NotFound   bool
}

// Renderer executes the embedded page templates.
type Renderer struct {
	messages  *messages.Catalog
	directory *template.Template
	line      *template.Template
	debug     *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(msgs *messages.Catalog) (*Renderer, error) {
	directoryTmpl, err := parsePage("templates/index.html")
	if err != nil {
		return nil, err
	}
	lineTmpl, err := parsePage("templates/line.html")
	if err != nil {
		return nil, err
	}
	debugTmpl, err := template.ParseFS(templateFS, "templates/debug_index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing debug template: %w", err)
	}

	return &Renderer{
		messages:  msgs,
		directory: directoryTmpl,
		line:      lineTmpl,
		debug:     debugTmpl,
	}, nil
}

func parsePage(name string) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", name)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return tmpl, nil
}

// NewPage prepares the shared page data for lang. lineCode is empty on the
// line list.
func (r *Renderer) NewPage(lang multilingual.Language, links Links, lineCode string) Page {
	options := make([]LanguageOption, 0, len(multilingual.Languages))
	for _, l := range multilingual.Languages {
		options = append(options, LanguageOption{
			Code:   l.Code(),
			Name:   l.DisplayName(),
			URL:    links.Language(l, lineCode),
			Active: l == lang,
		})
	}

	return Page{
		Lang:      lang,
		Msg:       r.messages.Printer(lang),
		Languages: options,
		links:     links,
	}
}

// RenderDirectory writes the line list page.
func (r *Renderer) RenderDirectory(w io.Writer, page DirectoryPage) error {
	return r.directory.ExecuteTemplate(w, "layout", page)
}

// RenderLine writes a line detail page.
func (r *Renderer) RenderLine(w io.Writer, page LinePage) error {
	return r.line.ExecuteTemplate(w, "layout", page)
}

// DirectoryPageFor builds the list page for lines, or the load failure page
// when lines could not be read.
func (r *Renderer) DirectoryPageFor(page Page, lines []models.LineSummary, opts directory.Options, loadErr error) DirectoryPage {
	if loadErr != nil {
		return DirectoryPage{
			Page:       page,
			View:       directory.View{Language: page.Lang.Code(), GroupBy: opts.GroupBy.String(), Query: opts.Query, Groups: []directory.Group{}},
			LoadFailed: true,
		}
	}
	return DirectoryPage{Page: page, View: directory.Build(lines, opts)}
}

// LinePageFor builds the detail page of detail.
func (r *Renderer) LinePageFor(page Page, detail *models.LineDetail) LinePage {
	resolved := models.ResolveLineDetail(detail, page.Lang)
	return LinePage{Page: page, Code: detail.LineCode, Line: &resolved}
}

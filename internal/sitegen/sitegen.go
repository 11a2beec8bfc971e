// Package sitegen writes the line list and every line page as static HTML,
// one directory per language.
package sitegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/LHMTR/haruto-information/internal/catalog"
	"github.com/LHMTR/haruto-information/internal/directory"
	"github.com/LHMTR/haruto-information/internal/logging"
	"github.com/LHMTR/haruto-information/internal/multilingual"
	"github.com/LHMTR/haruto-information/internal/webui"
)

// Result summarizes a Generate run.
type Result struct {
	Pages   int
	Skipped []string
}

// Generator renders the site from a catalog.
type Generator struct {
	catalog         *catalog.Manager
	renderer        *webui.Renderer
	defaultLanguage multilingual.Language
	logger          *slog.Logger
}

func NewGenerator(c *catalog.Manager, renderer *webui.Renderer, defaultLanguage multilingual.Language, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		catalog:         c,
		renderer:        renderer,
		defaultLanguage: defaultLanguage,
		logger:          logger.With(slog.String("component", "sitegen")),
	}
}

// staticLinks addresses pages by relative path inside the generated tree:
// <lang>/index.html and <lang>/information/<code>.html.
type staticLinks struct{}

func (staticLinks) Directory(multilingual.Language) string {
	return "../index.html"
}

func (staticLinks) Line(code string, _ multilingual.Language) string {
	return "information/" + url.PathEscape(code) + ".html"
}

func (staticLinks) Language(lang multilingual.Language, lineCode string) string {
	if lineCode == "" {
		return "../" + lang.Code() + "/index.html"
	}
	return "../../" + lang.Code() + "/information/" + url.PathEscape(lineCode) + ".html"
}

// Generate writes the whole site below outDir. Lines listed in the index but
// missing from the source are skipped; any other read failure aborts.
func (g *Generator) Generate(ctx context.Context, outDir string) (Result, error) {
	start := time.Now()
	result := Result{}

	lines, err := g.catalog.LoadIndex(ctx)
	if err != nil {
		return result, fmt.Errorf("loading line index: %w", err)
	}

	for _, lang := range multilingual.Languages {
		langDir := filepath.Join(outDir, lang.Code())

		page := g.renderer.DirectoryPageFor(
			g.renderer.NewPage(lang, staticLinks{}, ""),
			lines,
			directory.Options{GroupBy: directory.ByCompany, Language: lang},
			nil)
		if err := g.writeFile(filepath.Join(langDir, "index.html"), func(w io.Writer) error {
			return g.renderer.RenderDirectory(w, page)
		}); err != nil {
			return result, err
		}
		result.Pages++
	}

	for _, summary := range lines {
		if summary.LineCode == "" {
			g.logger.Warn("skipping line without line_code")
			continue
		}

		detail, err := g.catalog.LoadLine(ctx, summary.LineCode)
		if errors.Is(err, catalog.ErrLineNotFound) || errors.Is(err, catalog.ErrInvalidLineCode) {
			g.logger.Warn("skipping line",
				slog.String("line_code", summary.LineCode),
				slog.String("reason", err.Error()))
			result.Skipped = append(result.Skipped, summary.LineCode)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("loading line %s: %w", summary.LineCode, err)
		}

		for _, lang := range multilingual.Languages {
			page := g.renderer.LinePageFor(g.renderer.NewPage(lang, staticLinks{}, detail.LineCode), detail)
			path := filepath.Join(outDir, lang.Code(), "information", detail.LineCode+".html")
			if err := g.writeFile(path, func(w io.Writer) error {
				return g.renderer.RenderLine(w, page)
			}); err != nil {
				return result, err
			}
			result.Pages++
		}
	}

	if err := g.writeFile(filepath.Join(outDir, "index.html"), func(w io.Writer) error {
		return writeRedirect(w, g.defaultLanguage.Code()+"/index.html")
	}); err != nil {
		return result, err
	}

	logging.LogOperation(g.logger, "site_generated",
		slog.String("output_dir", outDir),
		slog.Int("page_count", result.Pages),
		slog.Int("skipped_count", len(result.Skipped)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

func (g *Generator) writeFile(path string, render func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, g.logger, "close_page_file")

	if err := render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}

// writeRedirect writes a page forwarding to target, a path made of language
// codes and fixed names.
func writeRedirect(w io.Writer, target string) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="0; url=%[1]s">
</head>
<body><a href="%[1]s">%[1]s</a></body>
</html>
`, target)
	return err
}

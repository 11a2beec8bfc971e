package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/LHMTR/haruto-information/internal/logging"
	"github.com/LHMTR/haruto-information/internal/models"
)

// IndexOptions controls which files BuildIndex reads.
type IndexOptions struct {
	// Exclude holds doublestar patterns matched against file names.
	// IndexFile is always excluded.
	Exclude []string
}

// IndexResult is the outcome of BuildIndex.
type IndexResult struct {
	Lines   []models.LineSummary
	Skipped []string
}

// BuildIndex reads every line document in dir and returns their summaries
// sorted by line code. Files without a line_code and unreadable files are
// skipped; a malformed JSON document fails the whole build.
func BuildIndex(dir string, opts IndexOptions, logger *slog.Logger) (IndexResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	names, err := doublestar.Glob(os.DirFS(dir), "*.json")
	if err != nil {
		return IndexResult{}, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(names)

	result := IndexResult{Lines: []models.LineSummary{}}
	for _, name := range names {
		if excluded(name, opts.Exclude) {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logging.LogError(logger, "failed to read line file", err,
				slog.String("file", name),
				slog.String("component", "index_builder"))
			result.Skipped = append(result.Skipped, name)
			continue
		}

		var summary models.LineSummary
		if err := json.Unmarshal(raw, &summary); err != nil {
			return IndexResult{}, fmt.Errorf("malformed JSON in %s: %w", name, err)
		}
		if summary.LineCode == "" {
			logger.Warn("skipping file without line_code",
				slog.String("file", name),
				slog.String("component", "index_builder"))
			result.Skipped = append(result.Skipped, name)
			continue
		}

		result.Lines = append(result.Lines, summary)
	}

	sort.SliceStable(result.Lines, func(i, j int) bool {
		return result.Lines[i].LineCode < result.Lines[j].LineCode
	})

	logging.LogOperation(logger, "line_index_built",
		slog.String("source", dir),
		slog.Int("line_count", len(result.Lines)),
		slog.Int("skipped_count", len(result.Skipped)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

func excluded(name string, patterns []string) bool {
	if name == IndexFile {
		return true
	}
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// WriteIndex writes lines to dir/index.json as indented UTF-8 JSON.
func WriteIndex(dir string, lines []models.LineSummary, logger *slog.Logger) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, IndexFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close_index_file")

	return writeJSON(f, lines)
}

// RebuildIndex runs BuildIndex on dir and writes the result back into dir.
func RebuildIndex(dir string, opts IndexOptions, logger *slog.Logger) (IndexResult, error) {
	result, err := BuildIndex(dir, opts, logger)
	if err != nil {
		return result, err
	}
	if err := WriteIndex(dir, result.Lines, logger); err != nil {
		return result, err
	}
	return result, nil
}

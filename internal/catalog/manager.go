// Package catalog reads the static line documents: index.json with the line
// summaries and one <line_code>.json per line. Every call reads the source
// again; nothing is cached.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/utils"
)

// IndexFile is the name of the line summary document.
const IndexFile = "index.json"

var (
	// ErrLineNotFound is returned when the source has no document for a line code.
	ErrLineNotFound = errors.New("line not found")
	// ErrIndexNotFound is returned when the source has no index.json.
	ErrIndexNotFound = errors.New("line index not found")
	// ErrInvalidLineCode is returned for line codes that cannot name a document.
	ErrInvalidLineCode = errors.New("invalid line code")
)

// Manager reads line data from a directory or an HTTP base URL.
type Manager struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// NewManager creates a Manager for config.Source.
func NewManager(config Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		config: config,
		client: &http.Client{Timeout: config.timeout()},
		logger: logger.With(slog.String("component", "catalog")),
	}
}

// Source returns the configured directory or base URL.
func (manager *Manager) Source() string {
	return manager.config.Source
}

// IsRemote reports whether the source is an HTTP base URL.
func (manager *Manager) IsRemote() bool {
	return manager.config.isRemote()
}

// LoadIndex reads and decodes index.json.
func (manager *Manager) LoadIndex(ctx context.Context) ([]models.LineSummary, error) {
	raw, err := manager.rawResource(ctx, IndexFile)
	if errors.Is(err, errNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	var lines []models.LineSummary
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", IndexFile, err)
	}
	if lines == nil {
		lines = []models.LineSummary{}
	}
	return lines, nil
}

// LoadLine reads and decodes the document of one line.
func (manager *Manager) LoadLine(ctx context.Context, lineCode string) (*models.LineDetail, error) {
	if err := utils.ValidateID(lineCode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLineCode, err)
	}

	name := lineCode + ".json"
	if name == IndexFile {
		return nil, fmt.Errorf("%w: %s is reserved", ErrInvalidLineCode, lineCode)
	}

	raw, err := manager.rawResource(ctx, name)
	if errors.Is(err, errNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrLineNotFound, lineCode)
	}
	if err != nil {
		return nil, err
	}

	var detail models.LineDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	if detail.LineCode == "" {
		detail.LineCode = lineCode
	}
	return &detail, nil
}

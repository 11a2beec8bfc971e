package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/LHMTR/haruto-information/internal/logging"
	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/utils"
)

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteLine writes detail to dir/<line_code>.json.
func WriteLine(dir string, detail *models.LineDetail, logger *slog.Logger) (err error) {
	if err := utils.ValidateID(detail.LineCode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLineCode, err)
	}
	if detail.LineCode+".json" == IndexFile {
		return fmt.Errorf("%w: %s is reserved", ErrInvalidLineCode, detail.LineCode)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, detail.LineCode+".json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close_line_file")

	return writeJSON(f, detail)
}

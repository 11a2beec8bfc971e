package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/LHMTR/haruto-information/internal/logging"
)

// errNotExist marks a resource that the source does not have.
var errNotExist = errors.New("resource does not exist")

// rawResource reads one named JSON resource from the source.
func (manager *Manager) rawResource(ctx context.Context, name string) ([]byte, error) {
	if manager.config.isRemote() {
		return manager.fetchRemote(ctx, name)
	}

	b, err := os.ReadFile(filepath.Join(manager.config.Source, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, errNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading local file %s: %w", name, err)
	}
	return b, nil
}

func (manager *Manager) fetchRemote(ctx context.Context, name string) ([]byte, error) {
	resourceURL, err := url.JoinPath(manager.config.Source, name)
	if err != nil {
		return nil, fmt.Errorf("error building URL for %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request for %s: %w", resourceURL, err)
	}

	resp, err := manager.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading %s: %w", resourceURL, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body,
		manager.logger.With(slog.String("url", resourceURL)),
		"catalog_response_body")

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", resourceURL, errNotExist)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("error downloading %s: unexpected status %d", resourceURL, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", resourceURL, err)
	}
	return b, nil
}

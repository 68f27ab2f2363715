package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ============================================================================
// DOWNLOAD SINK — Pure sink for serialized payloads
// ============================================================================

// MIME types for the supported formats.
const (
	MIMECSV  = "text/csv"
	MIMEJSON = "application/json"
)

// Sink writes serialized payloads as downloadable files.
type Sink struct {
	Dir    string
	Logger *slog.Logger
}

// Download writes payload to filename under the sink directory and returns
// the written path. The mime type is recorded for surfaces that care
// (a browser bridge would set Content-Type from it).
func (s Sink) Download(payload []byte, filename, mime string) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("export written",
		slog.String("path", path),
		slog.String("mime", mime),
		slog.Int("bytes", len(payload)))
	return path, nil
}

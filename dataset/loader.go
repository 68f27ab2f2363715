package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// ============================================================================
// LOADER — One-shot dataset fetch
// ============================================================================
// The dataset is consumed once at startup, from an HTTP URL or a local
// file, and never streamed or paginated. Any load failure is fatal to the
// dashboard: the caller replaces the whole visualization surface with a
// descriptive error state.
// ============================================================================

// maxPayloadSize bounds the dataset body read to prevent memory exhaustion
// on a misconfigured source.
const maxPayloadSize = 64 * 1024 * 1024 // 64MB

// ErrEmptyDataset is returned when the payload decodes to zero records.
var ErrEmptyDataset = errors.New("dataset: payload contains no records")

// ErrNotArray is returned when the payload is valid JSON but not an array.
var ErrNotArray = errors.New("dataset: payload is not a JSON array")

// Loader fetches and normalizes the building dataset.
type Loader struct {
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil client gets a 30-second-timeout default;
// a nil logger falls back to slog.Default.
func NewLoader(client *http.Client, logger *slog.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{client: client, logger: logger}
}

// Load reads the dataset from source — an http(s) URL or a file path —
// decodes the JSON array, and normalizes every record.
func (l *Loader) Load(ctx context.Context, source string) ([]Building, error) {
	var (
		payload []byte
		err     error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		payload, err = l.fetch(ctx, source)
	} else {
		payload, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", source, err)
	}

	records, err := Decode(payload)
	if err != nil {
		return nil, err
	}

	l.logger.Info("dataset loaded",
		slog.String("source", source),
		slog.Int("records", len(records)))
	return records, nil
}

// Decode parses a JSON payload into normalized records. The payload must be
// a non-empty array of objects.
func Decode(payload []byte) ([]Building, error) {
	dec := json.NewDecoder(strings.NewReader(string(payload)))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w (got %s)", ErrNotArray, typeErr.Value)
		}
		return nil, fmt.Errorf("dataset: decode payload: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}
	return Normalize(raw), nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, err
	}
	return body, nil
}

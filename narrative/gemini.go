// Package narrative generates short plain-language chart captions through
// an external language model. It is a fire-and-forget collaborator: a
// failed or missing caption degrades to an inline error in one chart's
// caption area and never blocks or fails the chart itself.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ============================================================================
// GEMINI CLIENT — The only file that calls an external API
// ============================================================================

// maxResponseSize bounds the model response body to prevent memory
// exhaustion.
const maxResponseSize = 1 * 1024 * 1024 // 1MB

// Generator produces a short text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the Gemini connection settings. The API key comes from the
// environment, never from config files.
type Config struct {
	APIKey   string
	Model    string // empty = default
	Endpoint string // empty = default
}

// Gemini implements Generator via the Google Gemini API.
type Gemini struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// NewGemini creates a Gemini caption generator.
func NewGemini(cfg Config, logger *slog.Logger) *Gemini {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash-lite"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gemini{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Generate sends the prompt and returns the model's text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s",
		g.config.Endpoint, g.config.Model, g.config.APIKey)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("narrative: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("narrative: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("narrative: request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("narrative: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("narrative: API returned %d: %s", resp.StatusCode, truncate(string(payload), 200))
	}

	var decoded geminiResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("narrative: parse response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("narrative: API error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("narrative: empty response")
	}

	text := cleanCaption(decoded.Candidates[0].Content.Parts[0].Text)
	g.logger.Debug("caption generated", slog.Int("chars", len(text)))
	return text, nil
}

// cleanCaption strips markdown fences and surrounding whitespace the model
// sometimes wraps short answers in.
func cleanCaption(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```text")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

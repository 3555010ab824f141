package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// GeminiClient calls the Gemini generateContent endpoint. On the rate-limit
// error class (HTTP 429 / RESOURCE_EXHAUSTED) it waits a fixed backoff and
// retries the identical request exactly once; every other failure, and a
// failed retry, collapses to ErrUnavailable. This is the only retry policy
// in the system.
type GeminiClient struct {
	baseURL string // e.g. "https://generativelanguage.googleapis.com"
	apiKey  string
	model   string // e.g. "gemini-2.5-flash"
	client  *http.Client
	logger  *slog.Logger

	backoff time.Duration
}

// Compile-time check: *GeminiClient satisfies the Gateway interface.
var _ Gateway = (*GeminiClient)(nil)

// NewGeminiClient creates a gateway against the given Gemini endpoint.
func NewGeminiClient(baseURL, apiKey, model string, logger *slog.Logger) *GeminiClient {
	return &GeminiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger:  logger,
		backoff: 2 * time.Second,
	}
}

// Generate issues one request, retrying once on the rate-limit class.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, images []Image) (string, error) {
	text, err := g.call(ctx, prompt, images)
	if err == nil {
		return text, nil
	}

	if !isRateLimited(err) {
		g.logger.Debug("gemini call failed", "error", err)
		return "", ErrUnavailable
	}

	select {
	case <-time.After(g.backoff):
	case <-ctx.Done():
		return "", ErrUnavailable
	}

	text, err = g.call(ctx, prompt, images)
	if err != nil {
		g.logger.Debug("gemini retry failed", "error", err)
		return "", ErrUnavailable
	}
	return text, nil
}

// ============================================================================
// Wire types
// ============================================================================

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inline_data,omitempty"`
}

type geminiBlob struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// httpError keeps the status and body so the retry classifier can see both.
type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("gemini returned status %d: %s", e.StatusCode, e.Body)
}

func isRateLimited(err error) bool {
	he, ok := err.(*httpError)
	if !ok {
		return false
	}
	return he.StatusCode == http.StatusTooManyRequests ||
		strings.Contains(he.Body, "RESOURCE_EXHAUSTED")
}

// call sends a single request and returns the raw text response.
func (g *GeminiClient) call(ctx context.Context, prompt string, images []Image) (string, error) {
	parts := make([]geminiPart, 0, len(images)+1)
	parts = append(parts, geminiPart{Text: prompt})
	for _, img := range images {
		parts = append(parts, geminiPart{
			InlineData: &geminiBlob{
				MIMEType: img.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}

	jsonData, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &httpError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned empty content")
	}

	return b.String(), nil
}

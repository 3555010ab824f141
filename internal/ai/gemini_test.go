package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func successBody(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return b
}

func newTestClient(url string) *GeminiClient {
	c := NewGeminiClient(url, "test-key", "gemini-2.5-flash", discard())
	c.backoff = 10 * time.Millisecond
	return c
}

func TestGenerate_Success(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write(successBody("a mock paper"))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Generate(context.Background(), "make a paper", nil)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "a mock paper" {
		t.Errorf("expected %q, got %q", "a mock paper", text)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 call, got %d", calls.Load())
	}
}

func TestGenerate_RetriesOnceOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write(successBody("second try"))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Generate(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "second try" {
		t.Errorf("expected %q, got %q", "second try", text)
	}
	if calls.Load() != 2 {
		t.Errorf("expected exactly 2 calls, got %d", calls.Load())
	}
}

func TestGenerate_TwoRateLimitsMeansUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "p", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected exactly 2 calls, got %d", calls.Load())
	}
}

func TestGenerate_OtherErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "p", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly 1 call, got %d", calls.Load())
	}
}

func TestGenerate_ResourceExhaustedBodyCountsAsRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED"}}`))
			return
		}
		w.Write(successBody("ok"))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Generate(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "ok" {
		t.Errorf("expected %q, got %q", "ok", text)
	}
}

func TestGenerate_SendsImageParts(t *testing.T) {
	var gotParts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) == 1 {
			gotParts = len(req.Contents[0].Parts)
		}
		w.Write(successBody("graded"))
	}))
	defer srv.Close()

	images := []Image{
		{MIMEType: "image/png", Data: []byte("fake-question")},
		{MIMEType: "image/jpeg", Data: []byte("fake-answer")},
	}
	_, err := newTestClient(srv.URL).Generate(context.Background(), "check strictly", images)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if gotParts != 3 {
		t.Errorf("expected 1 text + 2 image parts, got %d", gotParts)
	}
}

// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vchartered/backend/internal/account"
	"github.com/vchartered/backend/internal/activitylog"
	"github.com/vchartered/backend/internal/ai"
	"github.com/vchartered/backend/internal/scoreboard"
	"github.com/vchartered/backend/internal/service"
	"github.com/vchartered/backend/internal/session"
	"github.com/vchartered/backend/internal/store"
)

// busyMessage is the only thing an end user ever learns about an AI
// failure, whatever the underlying cause was.
const busyMessage = "Service busy. Please try again in a few seconds."

// maxUploadBytes bounds a single answer-sheet upload.
const maxUploadBytes = 10 << 20 // 10 MiB

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	accounts *account.Service
	scores   *scoreboard.Service
	activity *activitylog.Service
	sessions *session.Manager

	mockTest *service.MockTestService
	checker  *service.CheckerService
	chat     *service.ChatService
	library  *service.LibraryService

	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	accounts *account.Service,
	scores *scoreboard.Service,
	activity *activitylog.Service,
	sessions *session.Manager,
	mockTest *service.MockTestService,
	checker *service.CheckerService,
	chat *service.ChatService,
	library *service.LibraryService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accounts: accounts,
		scores:   scores,
		activity: activity,
		sessions: sessions,
		mockTest: mockTest,
		checker:  checker,
		chat:     chat,
		library:  library,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. Returns false (after writing
// a 400) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// requireUser resolves the request identity, writing a 401 when the caller
// is anonymous. Returns the identity and whether the caller may proceed.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (session.Identity, bool) {
	id := IdentityFrom(r.Context())
	if !id.LoggedIn() {
		http.Error(w, "login required", http.StatusUnauthorized)
		return session.Identity{}, false
	}
	return id, true
}

// handleAIError maps gateway failures to the user-facing busy message.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleAIError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ai.ErrUnavailable) {
		http.Error(w, busyMessage, http.StatusServiceUnavailable)
		return true
	}
	return false
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, entity+" not found", http.StatusNotFound)
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	http.Error(w, "internal error", http.StatusInternalServerError)
	return true
}

// readImages collects uploaded files from a multipart form field as
// gateway images. The bytes are passed through untouched; decoding the
// image is the model's problem.
func readImages(r *http.Request, field string) ([]ai.Image, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, err
		}
	}

	var images []ai.Image
	for _, fh := range r.MultipartForm.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		images = append(images, ai.Image{MIMEType: mimeType, Data: data})
	}
	return images, nil
}

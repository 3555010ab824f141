package api

import (
	"errors"
	"net/http"

	"github.com/vchartered/backend/internal/service"
)

type GeneratePaperRequest struct {
	Level      string `json:"level" example:"CA Final"`
	Subject    string `json:"subject" example:"Taxation"`
	Difficulty string `json:"difficulty" example:"Medium"`
}

type PaperResponse struct {
	Paper string `json:"paper"`
}

type SubmitResponse struct {
	Feedback string `json:"feedback"`
	Score    int    `json:"score,omitempty"`
	Scored   bool   `json:"scored"`
}

// generatePaper asks the model for a fresh mock test paper.
// @Summary      Generate a mock test paper
// @Tags         test
// @Accept       json
// @Produce      json
// @Param        request  body  GeneratePaperRequest  true  "Level, subject and difficulty"
// @Success      200  {object}  PaperResponse
// @Failure      400  {string}  string
// @Failure      503  {string}  string  "Service busy"
// @Router       /test/paper [post]
func (h *Handler) generatePaper(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req GeneratePaperRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	paper, err := h.mockTest.GeneratePaper(r.Context(), id.Email, req.Level, req.Subject, req.Difficulty)
	if h.handleAIError(w, err) {
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, PaperResponse{Paper: paper})
}

// submitAnswers grades uploaded answer-sheet images against the current paper.
// @Summary      Submit handwritten answers for evaluation
// @Tags         test
// @Accept       mpfd
// @Produce      json
// @Param        answers  formData  file  true  "Answer sheet images"
// @Success      200  {object}  SubmitResponse
// @Failure      409  {string}  string  "No paper generated yet"
// @Failure      503  {string}  string  "Service busy"
// @Router       /test/submit [post]
func (h *Handler) submitAnswers(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	images, err := readImages(r, "answers")
	if err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	feedback, score, scored, err := h.mockTest.SubmitAnswers(r.Context(), id.Email, images)
	if h.handleAIError(w, err) {
		return
	}
	if errors.Is(err, service.ErrNoPaper) {
		http.Error(w, "generate a test before submitting answers", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, SubmitResponse{Feedback: feedback, Score: score, Scored: scored})
}

// resetTest discards the caller's current paper.
// @Summary      Discard the current paper
// @Tags         test
// @Success      204
// @Router       /test/reset [post]
func (h *Handler) resetTest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	h.mockTest.Reset(id.Email)
	w.WriteHeader(http.StatusNoContent)
}

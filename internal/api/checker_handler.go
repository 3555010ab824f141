package api

import "net/http"

type CheckerResponse struct {
	Evaluation string `json:"evaluation"`
}

// checkAnswer grades a photographed answer against its question.
// @Summary      Evaluate a handwritten answer against its question
// @Tags         checker
// @Accept       mpfd
// @Produce      json
// @Param        question  formData  file  true   "Question image"
// @Param        answer    formData  file  false  "Answer image"
// @Success      200  {object}  CheckerResponse
// @Failure      400  {string}  string
// @Failure      503  {string}  string  "Service busy"
// @Router       /checker [post]
func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	question, err := readImages(r, "question")
	if err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	answer, err := readImages(r, "answer")
	if err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	evaluation, err := h.checker.Check(r.Context(), id.Email, append(question, answer...))
	if h.handleAIError(w, err) {
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, CheckerResponse{Evaluation: evaluation})
}

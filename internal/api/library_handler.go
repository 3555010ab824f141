package api

import "net/http"

type NotesRequest struct {
	Level   string `json:"level" example:"CA Inter"`
	Subject string `json:"subject" example:"Auditing"`
	Topic   string `json:"topic" example:"Audit sampling"`
}

type NotesResponse struct {
	Notes string `json:"notes"`
}

// revisionNotes generates structured notes for a syllabus topic.
// @Summary      Generate revision notes for a topic
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        request  body  NotesRequest  true  "Level, subject and topic"
// @Success      200  {object}  NotesResponse
// @Failure      400  {string}  string
// @Failure      503  {string}  string  "Service busy"
// @Router       /library/notes [post]
func (h *Handler) revisionNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req NotesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	notes, err := h.library.Notes(r.Context(), id.Email, req.Level, req.Subject, req.Topic)
	if h.handleAIError(w, err) {
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, NotesResponse{Notes: notes})
}

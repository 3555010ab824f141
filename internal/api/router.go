package api

import "net/http"

// RegisterRoutes attaches all HTTP routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/signup", h.signup)
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/logout", h.logout)

	mux.HandleFunc("GET /pages/{page}", h.visitPage)

	mux.HandleFunc("GET /leaderboard", h.leaderboard)

	mux.HandleFunc("POST /test/paper", h.generatePaper)
	mux.HandleFunc("POST /test/submit", h.submitAnswers)
	mux.HandleFunc("POST /test/reset", h.resetTest)

	mux.HandleFunc("POST /checker", h.checkAnswer)

	mux.HandleFunc("POST /chat", h.sendChat)
	mux.HandleFunc("GET /chat/{conversationID}", h.getChat)

	mux.HandleFunc("POST /library/notes", h.revisionNotes)

	mux.HandleFunc("GET /admin/logs", h.adminLogs)
	mux.HandleFunc("GET /admin/users", h.adminUsers)
}

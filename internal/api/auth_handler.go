package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type SignupRequest struct {
	Email    string `json:"email" example:"alice@ca.com"`
	Name     string `json:"name" example:"Alice"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"alice@ca.com"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UID  string `json:"uid"` // reversible token for uid-parameter navigation
	Name string `json:"name" example:"Alice"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// signup registers a new account.
// @Summary      Create a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  SignupRequest  true  "New account"
// @Success      201  {object}  map[string]string
// @Failure      400  {string}  string
// @Failure      409  {string}  string  "Email Taken"
// @Router       /auth/signup [post]
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ok, err := h.accounts.Create(req.Email, req.Name, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "Email Taken", http.StatusConflict)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// login verifies credentials and issues the session cookies.
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  LoginResponse
// @Failure      401  {string}  string  "Wrong Credentials"
// @Router       /auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	name, ok := h.accounts.VerifyLogin(req.Email, req.Password)
	if !ok {
		http.Error(w, "Wrong Credentials", http.StatusUnauthorized)
		return
	}

	uid, err := h.sessions.IssueLogin(w, req.Email, name)
	if err != nil {
		h.logger.Error("failed to issue session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.activity.Log(req.Email, "Login", "Success")

	respondJSON(w, http.StatusOK, LoginResponse{UID: uid, Name: name})
}

// logout clears the session cookies.
// @Summary      Clear the session cookies
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if id := IdentityFrom(r.Context()); id.LoggedIn() {
		h.activity.Log(id.Email, "Logout", "Clicked")
	}
	h.sessions.ClearLogin(w)
	w.WriteHeader(http.StatusNoContent)
}

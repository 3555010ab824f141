package api

import "net/http"

type ActivityEntry struct {
	Email     string `json:"email"`
	Action    string `json:"action" example:"Login"`
	Details   string `json:"details" example:"Success"`
	Timestamp string `json:"timestamp" example:"2025-06-01 14:03:05"`
}

type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// requireAdmin layers the admin gate on top of requireUser.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	id, ok := h.requireUser(w, r)
	if !ok {
		return false
	}
	if !id.IsAdmin {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// adminLogs returns the full activity log, newest first.
// @Summary      Full activity log, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {array}  ActivityEntry
// @Failure      403  {string}  string
// @Router       /admin/logs [get]
func (h *Handler) adminLogs(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	entries, err := h.activity.Entries()
	if err != nil {
		h.logger.Error("failed to load activity log", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]ActivityEntry, len(entries))
	for i, e := range entries {
		out[i] = ActivityEntry{
			Email:     e.Email,
			Action:    e.Action,
			Details:   e.Details,
			Timestamp: e.Timestamp,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// adminUsers returns every registered account.
// @Summary      All registered accounts
// @Tags         admin
// @Produce      json
// @Success      200  {array}  AdminUser
// @Failure      403  {string}  string
// @Router       /admin/users [get]
func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	users, err := h.activity.Users()
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]AdminUser, len(users))
	for i, u := range users {
		out[i] = AdminUser{Email: u.Email, Name: u.Name}
	}
	respondJSON(w, http.StatusOK, out)
}

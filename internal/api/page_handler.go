package api

import (
	"net/http"

	"github.com/vchartered/backend/internal/session"
)

type PageResponse struct {
	Page        string `json:"page" example:"Test"`
	Description string `json:"description" example:"Real exam simulation"`
	AdminPanel  bool   `json:"admin_panel"` // whether the admin surface is visible to this user
}

// pageTable is the closed dispatch table: every navigable feature and the
// blurb its dashboard card shows. Unknown page names never reach it,
// ParsePage folds them into Home first.
var pageTable = map[session.Page]string{
	session.PageHome:    "Dashboard",
	session.PageTest:    "Real exam simulation",
	session.PageChecker: "Instant paper checking",
	session.PageChat:    "Your CA AI friend",
	session.PageLibrary: "Smart revision notes",
	session.PageAdmin:   "Activity logs",
}

// visitPage resolves the requested page name, records the visit, and tells
// the client which feature is active. The admin page silently degrades to
// Home for non-admins.
// @Summary      Navigate to a page
// @Tags         pages
// @Produce      json
// @Param        page  path  string  true  "Page name"
// @Success      200  {object}  PageResponse
// @Failure      401  {string}  string
// @Router       /pages/{page} [get]
func (h *Handler) visitPage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	page := session.ParsePage(r.PathValue("page"))
	if page == session.PageAdmin && !id.IsAdmin {
		page = session.PageHome
	}

	if page != session.PageHome {
		h.activity.Log(id.Email, "Visit", string(page))
	}

	respondJSON(w, http.StatusOK, PageResponse{
		Page:        string(page),
		Description: pageTable[page],
		AdminPanel:  id.IsAdmin,
	})
}

package api

import "net/http"

type LeaderboardEntry struct {
	Email   string `json:"email" example:"alice@ca.com"`
	Subject string `json:"subject" example:"Taxation"`
	Score   int    `json:"score" example:"40"`
}

// leaderboard returns the top scores, best first.
// @Summary      Top five scores
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}  LeaderboardEntry
// @Failure      401  {string}  string
// @Router       /leaderboard [get]
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	top, err := h.scores.TopScores(0)
	if err != nil {
		h.logger.Error("failed to load leaderboard", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entries := make([]LeaderboardEntry, len(top))
	for i, r := range top {
		entries[i] = LeaderboardEntry{
			Email:   r.Email,
			Subject: r.Subject,
			Score:   r.Score,
		}
	}

	respondJSON(w, http.StatusOK, entries)
}

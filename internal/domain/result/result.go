package result

import "time"

// Result is one recorded score event. Rows are append-only: the leaderboard
// and history views are reconstructed purely from insertion order.
type Result struct {
	Email   string
	Subject string
	Score   int
	Date    string // YYYY-MM-DD
}

func New(email, subject string, score int) *Result {
	return &Result{
		Email:   email,
		Subject: subject,
		Score:   score,
		Date:    time.Now().Format("2006-01-02"),
	}
}

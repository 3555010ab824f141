package activity

import "time"

// Entry is one audit event. Writes are best-effort: a failed insert must
// never surface to the action that triggered it.
type Entry struct {
	Email     string
	Action    string // e.g. "Login", "Visit", "Generated Test"
	Details   string
	Timestamp string // YYYY-MM-DD HH:MM:SS
}

func New(email, action, details string) *Entry {
	return &Entry{
		Email:     email,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}
}

package scoreboard

import (
	"github.com/vchartered/backend/internal/domain/result"
	"github.com/vchartered/backend/internal/store"
)

// DefaultLimit is how many rows the sidebar leaderboard shows.
const DefaultLimit = 5

// Service records score events and produces the ranked leaderboard view.
// It imposes no bounds on the score value: the caller decides what a test
// was worth, the service only persists it.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// RecordScore appends a result stamped with the current date.
func (s *Service) RecordScore(email, subject string, score int) error {
	return s.store.SaveResult(result.New(email, subject, score))
}

// TopScores returns the top-N results, scores descending, ties broken by
// insertion order. limit <= 0 means DefaultLimit.
func (s *Service) TopScores(limit int) ([]*result.Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.store.TopResults(limit)
}

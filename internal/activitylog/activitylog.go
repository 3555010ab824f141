package activitylog

import (
	"log/slog"

	"github.com/vchartered/backend/internal/domain/activity"
	"github.com/vchartered/backend/internal/domain/user"
	"github.com/vchartered/backend/internal/store"
	"github.com/vchartered/backend/internal/worker"
)

// Service appends audit events. Writes are fire-and-forget: they run on a
// single background worker and a failed insert is discarded, so the caller
// can never observe an error from Log. Reads back the full log for the
// admin view.
type Service struct {
	store  store.Store
	pool   *worker.Pool
	logger *slog.Logger
}

func NewService(s store.Store, logger *slog.Logger) *Service {
	return &Service{
		store: s,
		// One worker keeps entries in submission order.
		pool:   worker.NewPool(1, 64),
		logger: logger,
	}
}

// Log records an audit event. It never blocks on the store and never
// reports failure; the only trace of a lost entry is a debug log line.
func (s *Service) Log(email, action, details string) {
	entry := activity.New(email, action, details)
	s.pool.Submit(func() {
		if err := s.store.AppendActivity(entry); err != nil {
			s.logger.Debug("activity log write dropped",
				"action", action,
				"error", err,
			)
		}
	})
}

// Entries returns all audit events, newest first.
func (s *Service) Entries() ([]*activity.Entry, error) {
	return s.store.ListActivity()
}

// Users returns every registered account for the admin view.
func (s *Service) Users() ([]*user.User, error) {
	return s.store.ListUsers()
}

// Close drains pending writes. Call once, at shutdown.
func (s *Service) Close() {
	s.pool.Close()
}

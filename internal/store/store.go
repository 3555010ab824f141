package store

import (
	"errors"

	"github.com/vchartered/backend/internal/domain/activity"
	"github.com/vchartered/backend/internal/domain/result"
	"github.com/vchartered/backend/internal/domain/user"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert collides with an existing
	// primary key. It is the sign-up rejection path.
	ErrDuplicate = errors.New("already exists")
)

// Store is the persistence boundary. Implementations must tolerate
// concurrent readers and occasional concurrent single-row writers; no
// operation spans more than one statement.
type Store interface {
	CreateUser(u *user.User) error
	GetUser(email string) (*user.User, error)
	ListUsers() ([]*user.User, error)

	SaveResult(r *result.Result) error
	TopResults(limit int) ([]*result.Result, error)

	AppendActivity(e *activity.Entry) error
	ListActivity() ([]*activity.Entry, error)

	Close() error
}

package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vchartered/backend/internal/domain/activity"
	"github.com/vchartered/backend/internal/domain/result"
	"github.com/vchartered/backend/internal/domain/user"
	"github.com/vchartered/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateUser(user.New("alice@ca.com", "Alice", "hash1")))

	err := s.CreateUser(user.New("alice@ca.com", "Someone Else", "hash2"))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	// The original row is untouched.
	u, err := s.GetUser("alice@ca.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "hash1", u.PasswordHash)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser("nobody@ca.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTopResults_OrderAndTieBreak(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveResult(result.New("a@ca.com", "Taxation", 40)))
	require.NoError(t, s.SaveResult(result.New("b@ca.com", "Audit", 35)))
	require.NoError(t, s.SaveResult(result.New("c@ca.com", "Costing", 40)))
	require.NoError(t, s.SaveResult(result.New("d@ca.com", "IBS", 50)))

	top, err := s.TopResults(3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "d@ca.com", top[0].Email)
	// Equal scores keep insertion order: a@ca.com was recorded before c@ca.com.
	assert.Equal(t, "a@ca.com", top[1].Email)
	assert.Equal(t, "c@ca.com", top[2].Email)
}

func TestTopResults_LimitLargerThanRows(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveResult(result.New("a@ca.com", "Taxation", 40)))

	top, err := s.TopResults(5)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestActivityLog_TimestampDescending(t *testing.T) {
	s := newTestStore(t)

	first := activity.New("a@ca.com", "Login", "Success")
	first.Timestamp = "2026-01-01 09:00:00"
	second := activity.New("a@ca.com", "Visit", "Test")
	second.Timestamp = "2026-01-02 09:00:00"

	require.NoError(t, s.AppendActivity(first))
	require.NoError(t, s.AppendActivity(second))

	entries, err := s.ListActivity()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Visit", entries[0].Action)
	assert.Equal(t, "Login", entries[1].Action)
}

func TestListUsers(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateUser(user.New("alice@ca.com", "Alice", "h1")))
	require.NoError(t, s.CreateUser(user.New("bob@ca.com", "Bob", "h2")))

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

package account_test

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vchartered/backend/internal/account"
	"github.com/vchartered/backend/internal/store"
)

func newService(t *testing.T) *account.Service {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return account.NewService(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_OnceThenDuplicate(t *testing.T) {
	svc := newService(t)

	ok, err := svc.Create("alice@ca.com", "Alice", "pw123")
	require.NoError(t, err)
	assert.True(t, ok)

	// Same identifier again is rejected regardless of password.
	ok, err = svc.Create("alice@ca.com", "Alice Again", "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyLogin(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create("alice@ca.com", "Alice", "pw123")
	require.NoError(t, err)

	name, ok := svc.VerifyLogin("alice@ca.com", "pw123")
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)

	_, ok = svc.VerifyLogin("alice@ca.com", "wrong")
	assert.False(t, ok)

	_, ok = svc.VerifyLogin("nobody@ca.com", "pw123")
	assert.False(t, ok)
}

func TestDisplayName_FallsBack(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create("alice@ca.com", "Alice", "pw123")
	require.NoError(t, err)

	assert.Equal(t, "Alice", svc.DisplayName("alice@ca.com"))
	assert.Equal(t, "Student", svc.DisplayName("nobody@ca.com"))
}

func TestCreate_PolicyRejects(t *testing.T) {
	svc := newService(t).WithPolicy(func(email, name, password string) error {
		return errors.New("closed beta")
	})

	ok, err := svc.Create("alice@ca.com", "Alice", "pw123")
	assert.False(t, ok)
	assert.Error(t, err)
}

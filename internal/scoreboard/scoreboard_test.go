package scoreboard_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vchartered/backend/internal/scoreboard"
	"github.com/vchartered/backend/internal/store"
)

func newService(t *testing.T) *scoreboard.Service {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return scoreboard.NewService(s)
}

func TestRecordThenTop(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.RecordScore("alice@ca.com", "Taxation", 40))
	require.NoError(t, svc.RecordScore("alice@ca.com", "Audit", 35))

	top, err := svc.TopScores(5)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Taxation", top[0].Subject)
	assert.Equal(t, 40, top[0].Score)
	assert.Equal(t, "Audit", top[1].Subject)
	assert.Equal(t, 35, top[1].Score)
}

func TestTopScores_DefaultLimit(t *testing.T) {
	svc := newService(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, svc.RecordScore("a@ca.com", "Costing", i))
	}

	top, err := svc.TopScores(0)
	require.NoError(t, err)
	assert.Len(t, top, scoreboard.DefaultLimit)
	assert.Equal(t, 9, top[0].Score)
}

func TestTopScores_IncludesNewHighScore(t *testing.T) {
	svc := newService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RecordScore("a@ca.com", "Costing", 10))
	}
	require.NoError(t, svc.RecordScore("b@ca.com", "Taxation", 99))

	top, err := svc.TopScores(5)
	require.NoError(t, err)
	assert.Equal(t, "b@ca.com", top[0].Email)
}

package scoreboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndTop(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, score := range []int{7, 12, 3, 12} {
		require.NoError(t, s.Record(ctx, Run{
			StartedAt: base,
			EndedAt:   base.Add(time.Duration(i+1) * time.Minute),
			Score:     score,
			Reason:    "energy exhausted",
		}))
	}

	top, err := s.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 12, top[0].Score)
	assert.Equal(t, 12, top[1].Score)
	assert.True(t, top[0].EndedAt.Before(top[1].EndedAt), "ties ordered by end time")
	assert.Equal(t, 7, top[2].Score)
	assert.Equal(t, 2*time.Minute, top[0].Duration())

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestStore_BestEmpty(t *testing.T) {
	s := openTemp(t)
	best, err := s.Best(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestStore_Best(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, Run{Score: 4}))
	require.NoError(t, s.Record(ctx, Run{Score: 9}))

	best, err := s.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, best)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, Run{Score: 5, Seed: 42}))
	require.NoError(t, s.Close())

	s, err = Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(42), top[0].Seed)
}

func TestStore_InMemory(t *testing.T) {
	s, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), Run{Score: 1}))
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

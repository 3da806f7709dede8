package daily

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/db"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	assert.Equal(t, "2026-03-01", DateKey(ts))
}

func TestRootIndexDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)

	a := RootIndex(day, "salt", 32)
	assert.Equal(t, a, RootIndex(later, "salt", 32))
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 32)
	assert.Zero(t, RootIndex(day, "salt", 0))

	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[RootIndex(day.AddDate(0, 0, i), "salt", 32)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func newStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.OpenAndMigrate(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewStore(conn)
}

func TestRecordKeepsBest(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	base := Result{PlayerID: "p1", Date: "2026-10-19", WordIndex: 3, RootWord: "silkworm"}
	first, lower, higher := base, base, base
	first.Score, first.Words = 12, 3
	lower.Score, lower.Words = 4, 1
	higher.Score, higher.Words = 20, 5

	require.NoError(t, s.Record(ctx, first))
	require.NoError(t, s.Record(ctx, lower))
	got, ok, err := s.Best(ctx, "p1", "2026-10-19")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12, got.Score)

	require.NoError(t, s.Record(ctx, higher))
	got, _, err = s.Best(ctx, "p1", "2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, 20, got.Score)
	assert.Equal(t, 5, got.Words)

	_, ok, err = s.Best(ctx, "p2", "2026-10-19")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLeaderboardOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	date := "2026-10-19"
	for _, r := range []Result{
		{PlayerID: "a", Date: date, RootWord: "silkworm", Score: 8, Words: 2},
		{PlayerID: "b", Date: date, RootWord: "silkworm", Score: 15, Words: 3},
		{PlayerID: "c", Date: date, RootWord: "silkworm", Score: 8, Words: 1},
		{PlayerID: "d", Date: "2026-10-18", RootWord: "laptop", Score: 99, Words: 9},
	} {
		require.NoError(t, s.Record(ctx, r))
	}

	top, err := s.Leaderboard(ctx, date, 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{top[0].PlayerID, top[1].PlayerID, top[2].PlayerID})
}

func TestLeaderboardShowsNamesNotIDs(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users(id, username, password_hash, created_at) VALUES('u-1','wordsmith','x','2026-10-19T00:00:00Z')`)
	require.NoError(t, err)

	date := "2026-10-19"
	require.NoError(t, s.Record(ctx, Result{PlayerID: "u-1", Date: date, RootWord: "silkworm", Score: 9, Words: 2}))
	require.NoError(t, s.Record(ctx, Result{PlayerID: "7c873cf3-anon", Date: date, RootWord: "silkworm", Score: 4, Words: 1}))

	top, err := s.Leaderboard(ctx, date, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "wordsmith", top[0].Player)
	assert.Equal(t, guestName, top[1].Player)

	body, err := json.Marshal(top)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "7c873cf3-anon")
	assert.NotContains(t, string(body), "u-1")
}

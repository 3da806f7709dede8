package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

func TestMemorySaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.NewSession("silkworm", game.ModeNormal)

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRejectsAnonymousSession(t *testing.T) {
	st := NewMemoryStore()
	assert.Error(t, st.Save(context.Background(), &game.Session{}))
	assert.Error(t, st.Save(context.Background(), nil))
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := game.NewSession("laptop", game.ModeNormal)
			_ = st.Save(ctx, s)
			_, _ = st.Get(ctx, s.ID)
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, st.Len())
}

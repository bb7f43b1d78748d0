package watermark

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	now := time.Now()
	require.NoError(t, store.Set(ctx, "s1", now))

	got, ok, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(now))
}

func TestMemoryStore_ConcurrentSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sessionID := string(rune('a' + n%26))
			_ = store.Set(ctx, sessionID, time.Now())
			_, _, _ = store.Get(ctx, sessionID)
		}(i)
	}
	wg.Wait()
}

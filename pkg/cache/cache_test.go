package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))

	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), got)

	now = now.Add(2 * time.Minute)
	_, ok, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFetch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("miss computes and stores", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()

		calls := 0
		compute := func(context.Context) (int, error) {
			calls++
			return 42, nil
		}

		got, err := Fetch(ctx, m, log, "answer", time.Minute, compute)
		require.NoError(t, err)
		require.Equal(t, 42, got)

		got, err = Fetch(ctx, m, log, "answer", time.Minute, compute)
		require.NoError(t, err)
		require.Equal(t, 42, got)
		require.Equal(t, 1, calls)
	})

	t.Run("compute error is returned as is", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()

		boom := errors.New("boom")
		_, err := Fetch(ctx, m, log, "k", time.Minute, func(context.Context) (int, error) {
			return 0, boom
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("broken backend degrades to compute", func(t *testing.T) {
		t.Parallel()

		calls := 0
		compute := func(context.Context) (string, error) {
			calls++
			return "fresh", nil
		}

		c := failingCache{err: errors.New("connection refused")}
		for i := 0; i < 2; i++ {
			got, err := Fetch(ctx, c, log, "k", time.Minute, compute)
			require.NoError(t, err)
			require.Equal(t, "fresh", got)
		}
		require.Equal(t, 2, calls)
	})

	t.Run("corrupt payload recomputes", func(t *testing.T) {
		t.Parallel()
		m := NewMemory()
		require.NoError(t, m.Set(ctx, "k", []byte("{not json"), time.Minute))

		got, err := Fetch(ctx, m, log, "k", time.Minute, func(context.Context) (int, error) {
			return 7, nil
		})
		require.NoError(t, err)
		require.Equal(t, 7, got)
	})
}

type failingCache struct{ err error }

func (f failingCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return f.err
}

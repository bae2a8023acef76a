package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetDeletePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "services:list:a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "services:list:a", []byte(`[1]`), 0))
	require.NoError(t, m.Set(ctx, "services:item:1", "x", 0))
	require.NoError(t, m.Set(ctx, "other", "y", 0))

	v, err := m.Get(ctx, "services:list:a")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, v)

	require.NoError(t, m.DeletePrefix(ctx, "services:"))
	assert.Equal(t, 1, m.Len())
}

func TestNoop_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Client = Noop{}

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

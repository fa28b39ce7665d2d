package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabled_BypassesEveryOperation(t *testing.T) {
	c := NewDisabled()
	ctx := context.Background()

	assert.False(t, c.Enabled())
	assert.ErrorIs(t, c.Ping(ctx), ErrUnavailable)
	assert.NoError(t, c.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))

	var out map[string]int
	hit, err := c.GetJSON(ctx, "k", &out)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)

	n, err := c.DeleteByPattern(ctx, "catalog:*")
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Close())
}

func TestNilCache_IsDisabled(t *testing.T) {
	var c *Redis
	assert.False(t, c.Enabled())
	assert.NoError(t, c.SetJSON(context.Background(), "k", 1, 0))
}

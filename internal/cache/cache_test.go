package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Un *Cache nil tiene que comportarse como cache deshabilitado:
// los servicios lo usan sin chequear si hay Redis.
func TestCacheNilEsNoOp(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	var dest float64
	ok, err := c.GetJSON(ctx, "una-key", &dest)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.SetJSON(ctx, "una-key", 7.5, time.Minute))
	assert.NoError(t, c.Del(ctx, "una-key"))
	assert.NoError(t, c.Close())
}

package nest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDeepMergesWithOverride(t *testing.T) {
	dst := map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
		"name":   "base",
	}
	src := map[string]any{
		"server": map[string]any{"port": 9090},
		"debug":  true,
	}

	require.NoError(t, Merge(dst, src))

	assert.Equal(t, 9090, Get(dst, "server.port"))
	assert.Equal(t, "localhost", Get(dst, "server.host"))
	assert.Equal(t, "base", dst["name"])
	assert.Equal(t, true, dst["debug"])
}

func TestMergeEmptySource(t *testing.T) {
	dst := map[string]any{"a": 1}
	require.NoError(t, Merge(dst, map[string]any{}))
	assert.Equal(t, map[string]any{"a": 1}, dst)
}

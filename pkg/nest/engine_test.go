package nest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineGetUsesBuiltInResolver(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	root := map[string]any{"a": map[string]any{"b": []any{10, 20}}}
	assert.Equal(t, 20, engine.Get(root, "a.b[1]"))
	assert.Equal(t, "dflt", engine.GetDefault(root, "a.missing", "dflt"))
}

func TestEngineQueryEvaluatesCEL(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	root := map[string]any{
		"items": []any{
			map[string]any{"name": "a", "available": true},
			map[string]any{"name": "b", "available": false},
		},
	}

	result, err := engine.Query(`_.items.filter(x, x.available)`, root)
	require.NoError(t, err)
	filtered, ok := result.([]any)
	require.True(t, ok, "expected a list, got %T", result)
	require.Len(t, filtered, 1)

	result, err = engine.Query(`_.items[0].name`, root)
	require.NoError(t, err)
	assert.Equal(t, "a", result)
}

func TestEngineQueryCompileError(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	_, err = engine.Query(`_.items.filter(`, map[string]any{})
	require.Error(t, err)
}

type staticResolver struct{ value any }

func (s staticResolver) Resolve(root any, path any, def any) any { return s.value }

func TestEngineCustomResolver(t *testing.T) {
	engine, err := New(WithResolver(staticResolver{value: "pinned"}))
	require.NoError(t, err)
	assert.Equal(t, "pinned", engine.Get(nil, "anything"))
}

func TestLoadObjectConvertsStructs(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}
	root, err := LoadObject(item{Name: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", Get(root, "name"))
}

func TestLoadRootParsesDocuments(t *testing.T) {
	root, err := LoadRoot(`{"a": {"b": 1}}`)
	require.NoError(t, err)
	assert.Equal(t, float64(1), Get(root, "a.b"))

	root, err = LoadRoot("a:\n  b: hi\n")
	require.NoError(t, err)
	assert.Equal(t, "hi", Get(root, "a.b"))
}

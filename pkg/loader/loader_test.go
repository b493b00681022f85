package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDataJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{"single object", `{"name": "test", "value": 42}`, 1, false},
		{"single array", `[1, 2, 3]`, 1, false},
		{"empty input", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadData(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}

	t.Run("invalid JSON is an error, not a YAML fallback", func(t *testing.T) {
		_, err := LoadData(`{invalid}`)
		require.Error(t, err)
	})
}

func TestLoadDataYAML(t *testing.T) {
	got, err := LoadData("name: test\nitems:\n  - a\n  - b\n")
	require.NoError(t, err)
	require.Len(t, got, 1)

	doc := got[0].(map[string]any)
	assert.Equal(t, "test", doc["name"])
	assert.Equal(t, []any{"a", "b"}, doc["items"])
}

func TestLoadDataMultiDocYAML(t *testing.T) {
	input := "---\nname: one\n---\nname: two\n"
	got, err := LoadData(input)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLoadDataNDJSON(t *testing.T) {
	input := `{"a": 1}
{"a": 2}
{"a": 3}`
	got, err := LoadData(input)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestLoadDataTOML(t *testing.T) {
	input := "[server]\nhost = \"localhost\"\nport = 8080\n"
	got, err := LoadData(input)
	require.NoError(t, err)
	require.Len(t, got, 1)

	doc := got[0].(map[string]any)
	server, ok := doc["server"].(map[string]any)
	require.True(t, ok, "expected server table, got %T", doc["server"])
	assert.Equal(t, "localhost", server["host"])
}

func TestLoadRootSingleVsMulti(t *testing.T) {
	single, err := LoadRoot(`{"a": 1}`)
	require.NoError(t, err)
	_, isMap := single.(map[string]any)
	assert.True(t, isMap)

	multi, err := LoadRoot("---\na: 1\n---\nb: 2\n")
	require.NoError(t, err)
	docs, isSlice := multi.([]any)
	require.True(t, isSlice)
	assert.Len(t, docs, 2)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a:\n  b: 1\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	doc := got.(map[string]any)
	assert.Contains(t, doc, "a")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoadObject(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		_, err := LoadObject(nil)
		require.Error(t, err)
	})

	t.Run("string parses as document", func(t *testing.T) {
		got, err := LoadObject(`{"a": 1}`)
		require.NoError(t, err)
		assert.IsType(t, map[string]any{}, got)
	})

	t.Run("maps pass through", func(t *testing.T) {
		in := map[string]any{"a": 1}
		got, err := LoadObject(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("structs become generic trees", func(t *testing.T) {
		type payload struct {
			Name string `json:"name"`
			Tags []string
		}
		got, err := LoadObject(payload{Name: "x", Tags: []string{"t"}})
		require.NoError(t, err)
		m, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "x", m["name"])
	})

	t.Run("slices of structs normalize elementwise", func(t *testing.T) {
		type item struct {
			ID int `json:"id"`
		}
		got, err := LoadObject([]item{{ID: 1}, {ID: 2}})
		require.NoError(t, err)
		list, ok := got.([]any)
		require.True(t, ok)
		require.Len(t, list, 2)
		first := list[0].(map[string]any)
		assert.Equal(t, float64(1), first["id"])
	})
}

func TestTryDecode(t *testing.T) {
	decoded, ok := TryDecode(`{"a": 1}`)
	require.True(t, ok)
	assert.IsType(t, map[string]any{}, decoded)

	_, ok = TryDecode("just a plain sentence")
	assert.False(t, ok)

	_, ok = TryDecode("")
	assert.False(t, ok)
}

func TestRecursiveDecodeExpandsSerializedStrings(t *testing.T) {
	in := map[string]any{
		"outer": `{"inner": "{\"deep\": 1}"}`,
	}
	got := RecursiveDecode(in).(map[string]any)
	outer := got["outer"].(map[string]any)
	inner := outer["inner"].(map[string]any)
	assert.Equal(t, float64(1), inner["deep"])
}

package nest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResolvesNestedPaths(t *testing.T) {
	tests := []struct {
		name string
		root any
		path any
		want any
	}{
		{
			name: "sequence path into typed-key map",
			root: map[string]any{"one": map[string]any{"two": map[any]any{3: 4}}},
			path: []any{"one", "two"},
			want: map[any]any{3: 4},
		},
		{
			name: "string path",
			root: map[string]any{"one": map[string]any{"two": map[any]any{3: 4}}},
			path: "one.two",
			want: map[any]any{3: 4},
		},
		{
			name: "typed key through sequence path",
			root: map[string]any{"one": map[string]any{"two": map[any]any{3: 4}}},
			path: []any{"one", "two", 3},
			want: 4,
		},
		{
			name: "index inside string path",
			root: map[string]any{"one": []any{"two", map[string]any{"three": []any{4, 5}}}},
			path: "one[1].three",
			want: []any{4, 5},
		},
		{
			name: "sequence path with int index",
			root: map[string]any{"one": []any{"two", map[string]any{"three": []any{4, 5}}}},
			path: []any{"one", 1, "three"},
			want: []any{4, 5},
		},
		{
			name: "leading index",
			root: []any{"one", map[string]any{"two": map[string]any{"three": []any{4, 5}}}},
			path: "[1].two.three.[0]",
			want: 4,
		},
		{
			name: "typed int slice leaf",
			root: []any{[]int{0, 1, 2, 3, 42}},
			path: []any{0, 4},
			want: 42,
		},
		{
			name: "deep nesting",
			root: []any{[]any{[]any{[]any{42}}}},
			path: []any{0, 0, 0, 0},
			want: 42,
		},
		{
			name: "empty path returns root",
			root: map[string]any{"a": 1},
			path: "",
			want: map[string]any{"a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Get(tt.root, tt.path))
		})
	}
}

func TestGetMissingPathYieldsNil(t *testing.T) {
	root := map[string]any{"one": map[string]any{"two": map[string]any{"three": 4}}}

	assert.Nil(t, Get(root, "one.four"))
	assert.Nil(t, Get(root, []any{"one", "four"}))
	assert.Nil(t, Get(root, "one.two.three.four"))
}

func TestGetDefaultStopsAtFirstFailure(t *testing.T) {
	root := map[string]any{"one": 1}
	// The default itself would resolve the remaining tokens; they must not
	// be consulted once a step fails.
	def := map[string]any{"two": "from-default"}

	got := GetDefault(root, "missing.two", def)
	assert.Equal(t, def, got)
}

func TestGetDefaultFullSuccessIgnoresDefault(t *testing.T) {
	root := map[string]any{"a": map[string]any{"b": 7}}
	assert.Equal(t, 7, GetDefault(root, "a.b", "fallback"))
}

func TestGetNilShortCircuit(t *testing.T) {
	root := map[string]any{"a": map[string]any{"b": nil}}
	// b resolves to nil, so the walk ends with nil even with a default set.
	assert.Nil(t, GetDefault(root, "a.b.c", "fallback"))
}

func TestGetStringAndSequencePathsAgree(t *testing.T) {
	root := map[string]any{
		"a": map[string]any{
			"b": []any{map[string]any{"c": 1}, map[string]any{"c": 2}},
		},
	}
	assert.Equal(t, Get(root, "a.b[0].c"), Get(root, []any{"a", "b", 0, "c"}))
	assert.Equal(t, Get(root, "a.b[1]"), Get(root, []any{"a", "b", 1}))
}

func TestGetNeverPanics(t *testing.T) {
	roots := []any{nil, 1, "scalar", []any{1}, map[string]any{"a": 1}, struct{}{}}
	paths := []any{nil, "", "a.b.c", "[9]", []any{nil, 0, "x"}, 3.5, true}

	for _, root := range roots {
		for _, path := range paths {
			require.NotPanics(t, func() {
				Get(root, path)
			})
		}
	}
}

func TestGetStructAttributeAccess(t *testing.T) {
	type address struct {
		City string `json:"city"`
	}
	type user struct {
		Name    string  `json:"name"`
		Address address `json:"address"`
	}
	root := map[string]any{"user": user{Name: "alice", Address: address{City: "Oakville"}}}

	assert.Equal(t, "alice", Get(root, "user.name"))
	assert.Equal(t, "Oakville", Get(root, "user.address.city"))
	assert.Nil(t, Get(root, "user.missing"))
}

func TestParsePathDropsEmptyTokens(t *testing.T) {
	var tokens []any
	for tok := range ParsePath("..a[0]..b,,") {
		tokens = append(tokens, tok)
	}
	assert.Equal(t, []any{"a", "0", "b"}, tokens)
}

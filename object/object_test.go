package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-amp-utils/object"
)

// ─── Is ───────────────────────────────────────────────────────────────────────

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{name: "empty map", in: map[string]any{}, want: true},
		{name: "populated map", in: map[string]any{"a": 1}, want: true},
		{name: "string", in: "a string", want: false},
		{name: "slice", in: []any{1, 2}, want: false},
		{name: "int slice", in: []int{1, 2}, want: false},
		{name: "nil", in: nil, want: false},
		{name: "nil map", in: map[string]any(nil), want: false},
		{name: "number", in: 42, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, object.Is(tt.in))
		})
	}
}

// ─── Merge ────────────────────────────────────────────────────────────────────

func TestMergeFlat(t *testing.T) {
	got := object.Merge(map[string]any{"a": 1}, map[string]any{"b": 2})
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)
}

func TestMergeNested(t *testing.T) {
	got := object.Merge(
		map[string]any{"a": map[string]any{"x": 1}},
		map[string]any{"a": map[string]any{"y": 2}},
	)
	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 2}}, got)
}

func TestMergeMutatesAndReturnsTarget(t *testing.T) {
	target := map[string]any{"a": 1}
	got := object.Merge(target, map[string]any{"b": 2})
	got["c"] = 3
	assert.Equal(t, 3, target["c"], "Merge must return the target map itself")
	assert.Equal(t, 2, target["b"])
}

func TestMergeNoSources(t *testing.T) {
	target := map[string]any{"a": 1}
	assert.Equal(t, map[string]any{"a": 1}, object.Merge(target))
	assert.Nil(t, object.Merge(nil))
}

func TestMergeNilTarget(t *testing.T) {
	got := object.Merge(nil, map[string]any{"a": 1})
	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestMergeLeftToRight(t *testing.T) {
	got := object.Merge(map[string]any{},
		map[string]any{"a": 1, "b": 1},
		map[string]any{"a": 2},
		map[string]any{"a": 3, "c": 3},
	)
	assert.Equal(t, map[string]any{"a": 3, "b": 1, "c": 3}, got)
}

func TestMergeReplacesSlices(t *testing.T) {
	got := object.Merge(
		map[string]any{"tags": []any{"a", "b"}},
		map[string]any{"tags": []any{"c"}},
	)
	assert.Equal(t, []any{"c"}, got["tags"], "slices replace, they never concatenate")
}

func TestMergeScalarOverwritesMap(t *testing.T) {
	got := object.Merge(
		map[string]any{"a": map[string]any{"x": 1}},
		map[string]any{"a": "flat"},
	)
	assert.Equal(t, "flat", got["a"])
}

func TestMergeMapOverwritesScalar(t *testing.T) {
	got := object.Merge(
		map[string]any{"a": "flat"},
		map[string]any{"a": map[string]any{"x": 1}},
	)
	assert.Equal(t, map[string]any{"x": 1}, got["a"])
}

func TestMergeNilValueOverwrites(t *testing.T) {
	got := object.Merge(map[string]any{"a": 1}, map[string]any{"a": nil})
	v, ok := got["a"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestMergeDoesNotAliasSourceMaps(t *testing.T) {
	src := map[string]any{"a": map[string]any{"x": 1}}
	got := object.Merge(map[string]any{}, src)
	got["a"].(map[string]any)["x"] = 99
	assert.Equal(t, 1, src["a"].(map[string]any)["x"])
}

func TestMergeDeep(t *testing.T) {
	got := object.Merge(
		map[string]any{"l1": map[string]any{"l2": map[string]any{"a": 1, "keep": true}}},
		map[string]any{"l1": map[string]any{"l2": map[string]any{"a": 2, "b": 3}}},
	)
	want := map[string]any{"l1": map[string]any{"l2": map[string]any{"a": 2, "b": 3, "keep": true}}}
	assert.Equal(t, want, got)
}

// ─── Options ──────────────────────────────────────────────────────────────────

func TestOptions(t *testing.T) {
	defaults := map[string]any{"a": 1}
	config := map[string]any{"a": 3, "b": 2}
	got := object.Options(defaults, config)
	assert.Equal(t, map[string]any{"a": 3, "b": 2}, got)
	assert.Equal(t, map[string]any{"a": 1}, defaults, "defaults must not be mutated")
	assert.Equal(t, map[string]any{"a": 3, "b": 2}, config, "config must not be mutated")
}

func TestOptionsNestedDoesNotMutateDefaults(t *testing.T) {
	defaults := map[string]any{"db": map[string]any{"host": "localhost", "port": 5432}}
	config := map[string]any{"db": map[string]any{"port": 6543}}
	got := object.Options(defaults, config)

	assert.Equal(t, map[string]any{"db": map[string]any{"host": "localhost", "port": 6543}}, got)
	assert.Equal(t, 5432, defaults["db"].(map[string]any)["port"])
}

func TestOptionsNilInputs(t *testing.T) {
	got := object.Options(nil, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = object.Options(map[string]any{"a": 1}, nil)
	assert.Equal(t, map[string]any{"a": 1}, got)
}

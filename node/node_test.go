package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRaw_Scalar(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{"hello", 42, 3.14, true} {
		n := FromRaw(raw)

		assert.Equal(t, Scalar, n.Kind())
		assert.Equal(t, raw, n.Raw())
	}
}

func TestFromRaw_Nil(t *testing.T) {
	t.Parallel()

	n := FromRaw(nil)

	assert.Equal(t, Empty, n.Kind())
	assert.Nil(t, n.Raw())
}

func TestFromRaw_Mapping_RoundTrip(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"name": "app",
		"api": map[string]any{
			"timeout": 30,
			"hosts":   []any{"a", "b"},
		},
	}

	n := FromRaw(raw)

	require.Equal(t, Mapping, n.Kind())
	assert.Equal(t, raw, n.Raw())
}

func TestFromRaw_Sequence_RoundTrip(t *testing.T) {
	t.Parallel()

	raw := []any{0, "1", "hello world"}

	n := FromRaw(raw)

	require.Equal(t, Sequence, n.Kind())
	assert.Equal(t, raw, n.Raw())
}

func TestFromRaw_TypedSliceAndMap(t *testing.T) {
	t.Parallel()

	n := FromRaw([]string{"x", "y"})

	require.Equal(t, Sequence, n.Kind())
	assert.Equal(t, []any{"x", "y"}, n.Raw())

	n = FromRaw(map[any]any{"port": 8080})

	require.Equal(t, Mapping, n.Kind())
	assert.Equal(t, map[string]any{"port": 8080}, n.Raw())
}

func TestFromRaw_Bytes_AreScalar(t *testing.T) {
	t.Parallel()

	n := FromRaw([]byte("blob"))

	assert.Equal(t, Scalar, n.Kind())
	assert.Equal(t, []byte("blob"), n.Raw())
}

func TestKeys_EnumerationOrderIsSorted(t *testing.T) {
	t.Parallel()

	n := FromRaw(map[string]any{"b": 1, "a": 2, "c": 3})

	assert.Equal(t, []string{"a", "b", "c"}, n.Keys())
}

func TestLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, FromRaw([]any{1, 2, 3}).Len())
	assert.Equal(t, 2, FromRaw(map[string]any{"a": 1, "b": 2}).Len())
	assert.Equal(t, 0, FromRaw("scalar").Len())
	assert.Equal(t, 0, FromRaw(nil).Len())
}

func TestMerge_Mappings_DeepMerge(t *testing.T) {
	t.Parallel()

	dst := FromRaw(map[string]any{"a": map[string]any{"x": 1}})
	src := FromRaw(map[string]any{"a": map[string]any{"y": 2}})

	merged := Merge(dst, src)

	assert.Equal(t, map[string]any{
		"a": map[string]any{"x": 1, "y": 2},
	}, merged.Raw())
}

func TestMerge_Mappings_KeysOnlyInDstSurvive(t *testing.T) {
	t.Parallel()

	dst := FromRaw(map[string]any{"keep": "me", "shared": "old"})
	src := FromRaw(map[string]any{"shared": "new"})

	merged := Merge(dst, src)

	assert.Equal(t, map[string]any{"keep": "me", "shared": "new"}, merged.Raw())
}

func TestMerge_NonMappingPairs_SrcReplacesWholesale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		dst  any
		src  any
	}{
		{name: "scalar over scalar", dst: "bar", src: "baz"},
		{name: "sequence over sequence", dst: []any{1, 2}, src: []any{3}},
		{name: "sequence over mapping", dst: map[string]any{"a": 1}, src: []any{1}},
		{name: "mapping over sequence", dst: []any{1}, src: map[string]any{"a": 1}},
		{name: "scalar over mapping", dst: map[string]any{"a": 1}, src: "flat"},
		{name: "mapping over empty", dst: nil, src: map[string]any{"a": 1}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			merged := Merge(FromRaw(tc.dst), FromRaw(tc.src))

			assert.Equal(t, FromRaw(tc.src).Raw(), merged.Raw())
		})
	}
}

func TestMerge_EmptySrc_IsNoOp(t *testing.T) {
	t.Parallel()

	dst := FromRaw(map[string]any{"a": 1})

	merged := Merge(dst, FromRaw(nil))

	assert.Equal(t, map[string]any{"a": 1}, merged.Raw())

	merged = Merge(dst, nil)

	assert.Equal(t, map[string]any{"a": 1}, merged.Raw())
}

func TestMerge_NestedSequences_NotMergedElementWise(t *testing.T) {
	t.Parallel()

	dst := FromRaw(map[string]any{"hosts": []any{"a", "b", "c"}})
	src := FromRaw(map[string]any{"hosts": []any{"d"}})

	merged := Merge(dst, src)

	assert.Equal(t, map[string]any{"hosts": []any{"d"}}, merged.Raw())
}

func TestRaw_ReturnsFreshContainers(t *testing.T) {
	t.Parallel()

	n := FromRaw(map[string]any{"a": []any{1, 2}})

	first, ok := n.Raw().(map[string]any)
	require.True(t, ok)

	first["a"] = "mutated"
	first["extra"] = true

	assert.Equal(t, map[string]any{"a": []any{1, 2}}, n.Raw())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Empty", Empty.String())
	assert.Equal(t, "Scalar", Scalar.String())
	assert.Equal(t, "Sequence", Sequence.String())
	assert.Equal(t, "Mapping", Mapping.String())
}

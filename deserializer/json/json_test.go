package json_test

import (
	stdjson "encoding/json"
	"testing"

	"github.com/0xalexb/hjarta-config/deserializer/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Object(t *testing.T) {
	t.Parallel()

	d := json.New()

	raw, err := d.Decode([]byte(`{"api":{"timeout":30,"hosts":["a","b"]}}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"api": map[string]any{
			"timeout": stdjson.Number("30"),
			"hosts":   []any{"a", "b"},
		},
	}, raw)
}

func TestDecode_NumbersStayVerbatim(t *testing.T) {
	t.Parallel()

	d := json.New()

	raw, err := d.Decode([]byte(`9007199254740993`))
	require.NoError(t, err)

	assert.Equal(t, stdjson.Number("9007199254740993"), raw)
}

func TestDecode_EmptyData(t *testing.T) {
	t.Parallel()

	d := json.New()

	for _, data := range [][]byte{nil, {}, []byte("  \n\t")} {
		_, err := d.Decode(data)

		require.ErrorIs(t, err, json.ErrEmptyData)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	d := json.New()

	_, err := d.Decode([]byte(`{"a":`))

	require.Error(t, err)
}

func TestDecode_TrailingData(t *testing.T) {
	t.Parallel()

	d := json.New()

	_, err := d.Decode([]byte(`{"a":1} trailing`))

	require.ErrorIs(t, err, json.ErrTrailingData)
}

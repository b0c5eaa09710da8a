package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Deserializer decodes YAML bytes into the generic raw-value representation.
// It uses github.com/goccy/go-yaml, which produces map[string]any for
// mappings.
type Deserializer struct{}

// New creates a new YAML deserializer instance.
func New() *Deserializer {
	return &Deserializer{}
}

// Decode parses data as a YAML document. Empty input and documents that
// contain no value (e.g. only comments) are reported as ErrEmptyData.
func (d *Deserializer) Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return nil, ErrEmptyData
	}

	return raw, nil
}

package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrTrailingData is returned when valid JSON is followed by more input.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Deserializer decodes JSON bytes into the generic raw-value representation.
// Numbers are kept as json.Number so integer values round-trip as written.
type Deserializer struct{}

// New creates a new JSON deserializer instance.
func New() *Deserializer {
	return &Deserializer{}
}

// Decode parses data as a single JSON value. It fails on empty input, on
// malformed JSON, and on trailing content, so that multi-format fallback can
// rule JSON out cleanly.
func (d *Deserializer) Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any

	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if decoder.More() {
		return nil, ErrTrailingData
	}

	return raw, nil
}

// Package json provides the JSON deserializer for the config store.
//
// Decoding produces the generic raw-value shapes the configuration tree is
// built from: map[string]any for objects, []any for arrays, and scalars for
// everything else. Numbers decode as json.Number rather than float64 so that
// integer configuration values survive a round trip unchanged.
//
// Usage:
//
//	d := json.New()
//	raw, err := d.Decode([]byte(`{"port": 8080}`))
package json

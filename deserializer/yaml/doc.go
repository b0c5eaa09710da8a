// Package yaml provides the YAML deserializer for the config store.
//
// This package uses github.com/goccy/go-yaml. Decoding produces the generic
// raw-value shapes the configuration tree is built from: map[string]any for
// mappings, []any for sequences, and scalars for everything else.
//
// Usage:
//
//	d := yaml.New()
//	raw, err := d.Decode([]byte("port: 8080\n"))
package yaml

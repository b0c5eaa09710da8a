// Package node implements the configuration tree: a tagged-union value type,
// the deep-merge rule that combines configuration layers, and delimiter-based
// path addressing for reads and writes.
//
// A Node is always in exactly one of four states: Empty, Scalar, Sequence, or
// Mapping. Nodes are built from generic raw values (the shapes produced by
// deserializers such as JSON or YAML) and project back to raw values:
//
//	n := node.FromRaw(map[string]any{"api": map[string]any{"timeout": 30}})
//	n.Raw() // map[string]any{"api": map[string]any{"timeout": 30}}
//
// # Merge
//
// Merge combines two trees with last-writer-wins semantics: only two Mapping
// nodes merge key by key; every other shape combination is replaced wholesale
// by the newer node. Sequences never merge element-wise.
//
// # Paths
//
// Paths are delimiter-separated segment strings (default delimiter ":"):
//
//	p := node.ParsePath("database:hosts:0", ":")
//	n, ok := p.Resolve(root)
//
// A numeric segment is an index only while navigating a Sequence; under a
// Mapping it is an ordinary key. Reads of missing paths report absence rather
// than failing, and writes through missing intermediate segments create the
// containers they need.
package node

package node

import (
	"fmt"
	"reflect"
	"sort"
)

// Kind identifies which of the four cases a Node currently holds.
type Kind int

const (
	// Empty is the absent value; distinct from an empty Mapping.
	Empty Kind = iota
	// Scalar wraps a single opaque value (string, number, bool, ...).
	Scalar
	// Sequence is an ordered list of child nodes.
	Sequence
	// Mapping associates string keys with child nodes.
	Mapping
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Scalar:
		return "Scalar"
	case Sequence:
		return "Sequence"
	case Mapping:
		return "Mapping"
	default:
		return "<unknown kind>"
	}
}

// Node is one point in a configuration tree. Exactly one case is active at a
// time, reported by Kind. Children are owned by their parent container; a
// subtree is never shared between two trees.
type Node struct {
	kind   Kind
	value  any
	items  []*Node
	keys   []string
	fields map[string]*Node
}

// FromRaw converts a generic raw value into a Node, classifying it by shape:
// map-shaped values become Mappings, slice- or array-shaped values become
// Sequences, nil becomes Empty, and everything else becomes a Scalar wrapping
// the value as-is. Conversion is total; it never fails.
//
// Go maps carry no iteration order, so Mapping keys are recorded in sorted
// order to keep enumeration deterministic.
func FromRaw(raw any) *Node {
	switch v := raw.(type) {
	case nil:
		return &Node{}
	case *Node:
		return v
	case map[string]any:
		n := newMapping()
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			n.keys = append(n.keys, k)
			n.fields[k] = FromRaw(v[k])
		}

		return n
	case []any:
		n := &Node{kind: Sequence, items: make([]*Node, 0, len(v))}
		for _, item := range v {
			n.items = append(n.items, FromRaw(item))
		}

		return n
	case []byte:
		// Raw bytes are a single value, not a sequence of numbers.
		return &Node{kind: Scalar, value: v}
	}

	return fromReflected(raw)
}

// fromReflected handles map and slice shapes beyond the common generic types,
// e.g. map[any]any from older YAML decoders or typed slices like []string.
func fromReflected(raw any) *Node {
	rv := reflect.ValueOf(raw)

	switch rv.Kind() {
	case reflect.Map:
		n := newMapping()

		byKey := make(map[string]any, rv.Len())
		keys := make([]string, 0, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value().Interface()
		}

		sort.Strings(keys)

		for _, k := range keys {
			n.keys = append(n.keys, k)
			n.fields[k] = FromRaw(byKey[k])
		}

		return n
	case reflect.Slice, reflect.Array:
		n := &Node{kind: Sequence, items: make([]*Node, 0, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			n.items = append(n.items, FromRaw(rv.Index(i).Interface()))
		}

		return n
	default:
		return &Node{kind: Scalar, value: raw}
	}
}

// Kind reports which case the node holds. A nil node is Empty.
func (n *Node) Kind() Kind {
	if n == nil {
		return Empty
	}

	return n.kind
}

// Raw projects the node back to the generic raw-value representation:
// Scalar to its wrapped value, Sequence to []any, Mapping to map[string]any,
// and Empty to nil. Containers are freshly allocated on every call, so the
// result is never a mutable alias into the tree.
func (n *Node) Raw() any {
	if n == nil {
		return nil
	}

	switch n.kind {
	case Scalar:
		return n.value
	case Sequence:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Raw()
		}

		return out
	case Mapping:
		out := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			out[k] = n.fields[k].Raw()
		}

		return out
	default:
		return nil
	}
}

// Keys returns the mapping's keys in enumeration order. Non-mapping nodes
// have no keys.
func (n *Node) Keys() []string {
	if n == nil || n.kind != Mapping {
		return nil
	}

	out := make([]string, len(n.keys))
	copy(out, n.keys)

	return out
}

// Len returns the number of elements of a Sequence or entries of a Mapping;
// zero for every other kind.
func (n *Node) Len() int {
	switch n.Kind() {
	case Sequence:
		return len(n.items)
	case Mapping:
		return len(n.keys)
	default:
		return 0
	}
}

// Merge combines two trees, with src overriding dst. When both nodes are
// Mappings the merge is recursive: src keys missing from dst are adopted
// whole, keys present in both merge by the same rule, and dst-only keys
// survive untouched. In every other shape combination src replaces dst
// wholesale; in particular, sequences are never merged element-wise. A nil or
// Empty src leaves dst unchanged.
//
// dst may be mutated in place; callers use the returned node as the merged
// result.
func Merge(dst, src *Node) *Node {
	if src == nil || src.kind == Empty {
		return dst
	}

	if dst == nil || dst.kind != Mapping || src.kind != Mapping {
		return src
	}

	for _, k := range src.keys {
		existing, ok := dst.fields[k]
		if !ok {
			dst.keys = append(dst.keys, k)
			dst.fields[k] = src.fields[k]

			continue
		}

		dst.fields[k] = Merge(existing, src.fields[k])
	}

	return dst
}

func newMapping() *Node {
	return &Node{kind: Mapping, fields: map[string]*Node{}}
}

// promote turns a Scalar or Empty node into an empty Mapping in place. Any
// scalar value held before promotion is discarded; a write through a leaf is
// taken as intent to make it a container.
func (n *Node) promote() {
	n.kind = Mapping
	n.value = nil
	n.items = nil
	n.keys = nil
	n.fields = map[string]*Node{}
}

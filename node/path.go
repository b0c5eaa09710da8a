package node

import (
	"strconv"
	"strings"
)

// DefaultDelimiter separates path segments unless a store is configured
// otherwise.
const DefaultDelimiter = ":"

// Path is a parsed address into a configuration tree: an ordered list of
// segments. Each segment is a mapping key, except that a segment which parses
// as a non-negative integer acts as an index while the node being navigated
// is a Sequence.
type Path struct {
	segments []string
}

// ParsePath splits a path string on the given delimiter. An empty delimiter
// falls back to DefaultDelimiter; an empty path has no segments and addresses
// the root itself.
func ParsePath(path, delimiter string) Path {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	if path == "" {
		return Path{}
	}

	return Path{segments: strings.Split(path, delimiter)}
}

// String returns the path rejoined with the given delimiter.
func (p Path) String(delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	return strings.Join(p.segments, delimiter)
}

// Resolve walks the path from root and returns the addressed node. The
// second result is false when any segment misses: an unknown mapping key, an
// out-of-range or non-numeric index against a Sequence, or any segment
// applied to a Scalar or Empty node. A partial path returns the whole subtree
// at that point.
func (p Path) Resolve(root *Node) (*Node, bool) {
	cur := root
	for _, seg := range p.segments {
		switch cur.Kind() {
		case Sequence:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(cur.items) {
				return nil, false
			}

			cur = cur.items[i]
		case Mapping:
			child, ok := cur.fields[seg]
			if !ok {
				return nil, false
			}

			cur = child
		default:
			return nil, false
		}
	}

	return cur, true
}

// Assign writes n at the path under root, creating intermediate containers as
// needed. Missing mapping keys are synthesized as empty Mappings; a Scalar or
// Empty node in the middle of the path is promoted to a Mapping, discarding
// its value. Against a Sequence, a segment equal to the current length
// appends exactly one element, an in-range index descends, and anything else
// is a no-op (no sparse growth, no insertion). Assigning a nil or Empty node
// is a no-op; Assign never deletes.
//
// An empty path is a no-op: the root cannot be replaced through its own
// address.
func (p Path) Assign(root *Node, n *Node) {
	if root == nil || n == nil || n.kind == Empty {
		return
	}

	if len(p.segments) == 0 {
		return
	}

	assign(root, p.segments, n)
}

func assign(cur *Node, segments []string, n *Node) {
	head, tail := segments[0], segments[1:]

	if cur.kind == Sequence {
		i, err := strconv.Atoi(head)
		if err != nil || i < 0 || i > len(cur.items) {
			return
		}

		if i == len(cur.items) {
			cur.items = append(cur.items, newMapping())
		}

		if len(tail) == 0 {
			cur.items[i] = n

			return
		}

		assign(cur.items[i], tail, n)

		return
	}

	if cur.kind != Mapping {
		cur.promote()
	}

	child, ok := cur.fields[head]
	if !ok {
		child = newMapping()
		cur.keys = append(cur.keys, head)
		cur.fields[head] = child
	}

	if len(tail) == 0 {
		cur.fields[head] = n

		return
	}

	assign(child, tail, n)
}

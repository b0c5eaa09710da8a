package config

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/basepath"
	deserjson "github.com/0xalexb/hjarta-config/deserializer/json"
	deseryaml "github.com/0xalexb/hjarta-config/deserializer/yaml"
	"github.com/0xalexb/hjarta-config/node"
)

// Store holds one merged configuration tree and the settings and
// deserializers used to feed it. Create stores with New; the zero value is
// not usable.
//
// A Store offers no internal synchronization; callers sequence loads and
// reads themselves.
type Store struct {
	root *node.Node

	delimiter    string
	argPrefix    string
	argSeparator string
	envSeparator string
	parseValues  bool

	resolver basepath.Resolver

	formats map[string]Deserializer
	order   []string
}

// New creates a Store with the JSON and YAML deserializers registered and
// the default syntax settings: path delimiter ":", argument prefix "--",
// argument separator ".", and environment separator "__".
func New(opts ...Option) *Store {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	s := &Store{
		root:         node.FromRaw(nil),
		delimiter:    node.DefaultDelimiter,
		argPrefix:    DefaultArgPrefix,
		argSeparator: DefaultArgSeparator,
		envSeparator: DefaultEnvSeparator,
		resolver:     basepath.OS{},
		formats:      map[string]Deserializer{},
	}

	s.Use("json", deserjson.New())
	s.Use("yaml", deseryaml.New(), "yml")

	if options.Delimiter != "" {
		s.delimiter = options.Delimiter
	}

	if options.ArgPrefix != "" {
		s.argPrefix = options.ArgPrefix
	}

	if options.ArgSeparator != "" {
		s.argSeparator = options.ArgSeparator
	}

	if options.EnvSeparator != "" {
		s.envSeparator = options.EnvSeparator
	}

	if options.Resolver != nil {
		s.resolver = options.Resolver
	}

	s.parseValues = options.ParseValues

	return s
}

// Use registers a deserializer under a format name, plus any aliases (for
// example the "yml" file extension for YAML). Registering an existing name
// replaces its implementation. Returns the store for chaining.
func (s *Store) Use(name string, d Deserializer, aliases ...string) *Store {
	name = strings.ToLower(name)

	if _, ok := s.formats[name]; !ok {
		s.order = append(s.order, name)
	}

	s.formats[name] = d

	for _, alias := range aliases {
		s.formats[strings.ToLower(alias)] = d
	}

	return s
}

// Load merges a raw value onto the tree, later loads overriding earlier
// ones. Nested mappings merge recursively; any other shape is replaced
// wholesale. A nil value is a no-op. Returns the store for chaining.
func (s *Store) Load(raw any) *Store {
	s.root = node.Merge(s.root, node.FromRaw(raw))

	return s
}

// Get returns the raw value at the given path, or nil when the path misses.
// Partial paths return whole subtrees. The result is a fresh projection,
// never an alias into the store's tree.
func (s *Store) Get(path string) any {
	n, ok := node.ParsePath(path, s.delimiter).Resolve(s.root)
	if !ok {
		return nil
	}

	return n.Raw()
}

// Set writes a value at the given path, creating intermediate mappings and
// extending sequences by one as needed. A nil value is a no-op; Set never
// deletes.
func (s *Store) Set(path string, value any) {
	node.ParsePath(path, s.delimiter).Assign(s.root, node.FromRaw(value))
}

// Configs returns the entire merged tree as nested maps, sequences, and
// scalars.
func (s *Store) Configs() any {
	return s.root.Raw()
}

// decode picks a deserializer and decodes data. A forced format must be
// registered and must succeed; otherwise the source's hint is tried first
// and every registered format after it, in registration order.
func (s *Store) decode(data []byte, forced, hint string) (any, error) {
	if forced != "" {
		d, ok := s.formats[strings.ToLower(forced)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, forced)
		}

		raw, err := d.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding as %s: %w", forced, err)
		}

		return raw, nil
	}

	if hint != "" {
		if d, ok := s.formats[strings.ToLower(hint)]; ok {
			raw, err := d.Decode(data)
			if err == nil {
				return raw, nil
			}
		}
	}

	for _, name := range s.order {
		raw, err := s.formats[name].Decode(data)
		if err != nil {
			continue
		}

		return raw, nil
	}

	return nil, fmt.Errorf("%w: tried %s", ErrDecode, strings.Join(s.order, ", "))
}

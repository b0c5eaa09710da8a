// Package config aggregates configuration from heterogeneous sources — raw
// values, command-line arguments, environment variables, files, and network
// resources — into one addressable tree with deterministic last-writer-wins
// merge semantics.
//
// A Store accumulates layers in load order. Only nested mappings merge
// recursively; every other shape combination is replaced wholesale by the
// later layer:
//
//	store := config.New()
//	store.Load(map[string]any{"api": map[string]any{"timeout": 30}})
//	store.Load(map[string]any{"api": map[string]any{"retries": 3}})
//
//	store.Get("api:timeout") // 30
//	store.Get("api:retries") // 3
//
// Values are addressed with colon-delimited paths (configurable via
// WithDelimiter). A numeric segment indexes a sequence; under a mapping it is
// an ordinary key. Missing paths read as nil and invalid writes are no-ops;
// there are no path errors.
//
// # Sources
//
// File and URL loads go through two extension points: a Source produces raw
// bytes and a Deserializer decodes them into a generic value. JSON and YAML
// deserializers are registered out of the box; Use adds more. When no format
// is forced, the store follows the source's format hint (file extension,
// Content-Type) and otherwise tries every registered deserializer in order:
//
//	if err := store.LoadFile("config.yaml"); err != nil {
//	    // file unreadable or bytes match no registered format
//	}
//
// Command-line arguments ("--api.timeout=30") and environment variables
// ("API__TIMEOUT=30") translate their separators to the tree delimiter and
// write through Set.
//
// # Concurrency
//
// A Store is not safe for concurrent use; loads are synchronous and callers
// sequence them. Get and Configs return fresh projections of the tree, never
// aliases into it.
package config

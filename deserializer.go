package config

// Deserializer defines an interface for decoding raw bytes of one format
// into the generic raw-value representation (nested maps, sequences, and
// scalars).
//
// Implementations report a decode failure when the bytes do not match their
// format; the store uses that failure to fall through to the next registered
// format. See deserializer/json and deserializer/yaml for the built-in
// implementations.
type Deserializer interface {
	Decode(data []byte) (any, error)
}

// Source defines an interface for reading raw configuration bytes from
// somewhere: a file, a network resource, or anything else that can produce a
// byte slice. See source/file and source/remote.
type Source interface {
	Fetch() ([]byte, error)
}

// FormatHinter is optionally implemented by sources that learn the data
// format while fetching, e.g. from a file extension or a Content-Type
// header. The hint is a registered format name or alias; an empty hint means
// unknown.
type FormatHinter interface {
	FormatHint() string
}

package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathIsDirectory is returned when the path points to a directory instead
// of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Source reads configuration bytes from a file. The file is read once at
// construction time and the contents cached, so every Fetch observes the
// same data.
type Source struct {
	path string
	data []byte
}

// New reads the file at fpath and returns a Source serving the cached
// contents. Returns an error if the file cannot be read or the path points
// to a directory.
func New(fpath string) (*Source, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Source{path: cleanPath, data: data}, nil
}

// Fetch returns a copy of the cached file contents. A copy is returned to
// prevent callers from mutating the cache.
func (s *Source) Fetch() ([]byte, error) {
	result := make([]byte, len(s.data))
	copy(result, s.data)

	return result, nil
}

// FormatHint reports the file extension, lower-cased and without the leading
// dot, as the likely data format; empty when the file has no extension.
func (s *Source) FormatHint() string {
	ext := filepath.Ext(s.path)

	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

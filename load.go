package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-config/source/file"
	"github.com/0xalexb/hjarta-config/source/remote"
)

// LoadSource fetches bytes from a source, decodes them, and merges the
// result onto the tree. Decoding happens fully before any merge, so a
// failure leaves the tree untouched.
func (s *Store) LoadSource(src Source, opts ...LoadOption) error {
	var options LoadOptions

	for _, apply := range opts {
		apply(&options)
	}

	data, err := src.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	var hint string

	if hinter, ok := src.(FormatHinter); ok {
		hint = hinter.FormatHint()
	}

	raw, err := s.decode(data, options.Format, hint)
	if err != nil {
		return err
	}

	s.Load(raw)

	return nil
}

// bytesSource serves an in-memory payload for LoadData.
type bytesSource []byte

func (b bytesSource) Fetch() ([]byte, error) {
	return b, nil
}

// LoadData decodes a raw byte payload and merges it, picking a format the
// same way LoadSource does. With no forced format, every registered
// deserializer is tried in order; ErrDecode is returned when none matches.
func (s *Store) LoadData(data []byte, opts ...LoadOption) error {
	return s.LoadSource(bytesSource(data), opts...)
}

// LoadFile reads and merges a configuration file. Relative paths are
// resolved through the store's base-path resolver: the working directory by
// default, or the base selected with WithBase / WithBaseDir. The format
// follows WithFormat when given, else the file extension, else every
// registered format is tried.
func (s *Store) LoadFile(fpath string, opts ...LoadOption) error {
	var options LoadOptions

	for _, apply := range opts {
		apply(&options)
	}

	resolved := fpath

	if !filepath.IsAbs(fpath) {
		base := options.BaseDir

		if base == "" {
			var err error

			base, err = s.resolver.Resolve(options.Base)
			if err != nil {
				return fmt.Errorf("resolving base path: %w", err)
			}
		}

		resolved = filepath.Join(base, fpath)
	}

	src, err := file.New(resolved)
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	return s.LoadSource(src, opts...)
}

// LoadURL fetches and merges a configuration resource over HTTP(S). The
// format follows WithFormat when given, else the response Content-Type or
// URL extension, else every registered format is tried.
func (s *Store) LoadURL(rawURL string, opts ...LoadOption) error {
	var options LoadOptions

	for _, apply := range opts {
		apply(&options)
	}

	var srcOpts []remote.Option

	if options.Timeout > 0 {
		srcOpts = append(srcOpts, remote.WithTimeout(options.Timeout))
	}

	return s.LoadSource(remote.New(rawURL, srcOpts...), opts...)
}

// LoadArgs merges command-line arguments of the form
// <prefix><path><separator-delimited>=<value>, e.g. "--api.timeout=30" with
// the default prefix and separator. The separator is translated to the tree
// delimiter and the value written through Set. Arguments without the prefix
// or without "=" are skipped. Returns the store for chaining.
func (s *Store) LoadArgs(args []string) *Store {
	for _, arg := range args {
		if !strings.HasPrefix(arg, s.argPrefix) {
			continue
		}

		key, value, found := strings.Cut(strings.TrimPrefix(arg, s.argPrefix), "=")
		if !found || key == "" {
			continue
		}

		path := strings.ReplaceAll(key, s.argSeparator, s.delimiter)
		s.Set(path, s.parseValue(path, value))
	}

	return s
}

// LoadEnv merges environment entries of the form
// <PATH__WITH__SEPARATOR>=<value>, translating the separator to the tree
// delimiter and writing each value through Set. A nil slice reads the
// process environment. Returns the store for chaining.
func (s *Store) LoadEnv(environ []string) *Store {
	if environ == nil {
		environ = os.Environ()
	}

	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}

		path := strings.ReplaceAll(key, s.envSeparator, s.delimiter)
		s.Set(path, s.parseValue(path, value))
	}

	return s
}

// parseValue optionally decodes an argument or environment value as
// structured data, keeping the raw string when no registered format accepts
// it. Individual decode failures are swallowed; only the fallback is logged.
func (s *Store) parseValue(path, value string) any {
	if !s.parseValues {
		return value
	}

	for _, name := range s.order {
		raw, err := s.formats[name].Decode([]byte(value))
		if err != nil {
			continue
		}

		return raw
	}

	slog.Debug("value kept as raw string", slog.String("path", path))

	return value
}

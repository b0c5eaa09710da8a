package config

import (
	"time"

	"github.com/0xalexb/hjarta-config/basepath"
)

// Default syntax settings for stores created by New.
const (
	// DefaultArgPrefix marks command-line arguments carrying configuration.
	DefaultArgPrefix = "--"
	// DefaultArgSeparator separates path segments inside an argument key.
	DefaultArgSeparator = "."
	// DefaultEnvSeparator separates path segments inside an environment
	// variable name.
	DefaultEnvSeparator = "__"
)

// Options holds settings for a Store.
type Options struct {
	Delimiter    string
	ArgPrefix    string
	ArgSeparator string
	EnvSeparator string
	ParseValues  bool
	Resolver     basepath.Resolver
}

// Option defines a function type for applying store settings.
type Option func(*Options)

// WithDelimiter sets the path delimiter used by Get, Set, and path
// translation. Defaults to ":".
func WithDelimiter(delimiter string) Option {
	return func(opts *Options) {
		opts.Delimiter = delimiter
	}
}

// WithArgPrefix sets the prefix marking configuration arguments in LoadArgs.
// Defaults to "--".
func WithArgPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.ArgPrefix = prefix
	}
}

// WithArgSeparator sets the separator translated to the tree delimiter in
// argument keys. Defaults to ".".
func WithArgSeparator(separator string) Option {
	return func(opts *Options) {
		opts.ArgSeparator = separator
	}
}

// WithEnvSeparator sets the separator translated to the tree delimiter in
// environment variable names. Defaults to "__".
func WithEnvSeparator(separator string) Option {
	return func(opts *Options) {
		opts.EnvSeparator = separator
	}
}

// WithValueParsing makes LoadArgs and LoadEnv attempt to decode values as
// structured data via the registered deserializers, keeping the raw string
// when no format matches. Off by default: values are stored as the strings
// they arrived as.
func WithValueParsing() Option {
	return func(opts *Options) {
		opts.ParseValues = true
	}
}

// WithResolver sets the base-path resolver used to resolve relative file
// paths in LoadFile. Defaults to basepath.OS{}.
func WithResolver(resolver basepath.Resolver) Option {
	return func(opts *Options) {
		opts.Resolver = resolver
	}
}

// LoadOptions holds per-load settings for LoadFile, LoadURL, and LoadSource.
type LoadOptions struct {
	Format  string
	Base    basepath.Kind
	BaseDir string
	Timeout time.Duration
}

// LoadOption defines a function type for applying per-load settings.
type LoadOption func(*LoadOptions)

// WithFormat forces a specific registered format instead of selecting one by
// hint or by trying all.
func WithFormat(format string) LoadOption {
	return func(opts *LoadOptions) {
		opts.Format = format
	}
}

// WithBase resolves a relative file path against the given base-path kind
// instead of the working directory.
func WithBase(kind basepath.Kind) LoadOption {
	return func(opts *LoadOptions) {
		opts.Base = kind
	}
}

// WithBaseDir resolves a relative file path against an explicit directory,
// taking precedence over WithBase.
func WithBaseDir(dir string) LoadOption {
	return func(opts *LoadOptions) {
		opts.BaseDir = dir
	}
}

// WithTimeout bounds the HTTP request issued by LoadURL. Zero keeps the
// remote source's default.
func WithTimeout(timeout time.Duration) LoadOption {
	return func(opts *LoadOptions) {
		opts.Timeout = timeout
	}
}

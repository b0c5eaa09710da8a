package basepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Kind selects which base directory relative configuration paths resolve
// against.
type Kind int

const (
	// WorkingDir resolves against the process working directory.
	WorkingDir Kind = iota
	// Executable resolves against the directory holding the executable.
	Executable
	// Project resolves against the project root, found by walking up from
	// the executable until a project manifest file is found.
	Project
	// Custom resolves against an explicitly configured directory.
	Custom
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case WorkingDir:
		return "working directory"
	case Executable:
		return "executable"
	case Project:
		return "project root"
	case Custom:
		return "custom"
	default:
		return "<unknown kind>"
	}
}

// DefaultManifest is the file whose presence marks the project root.
const DefaultManifest = "go.mod"

// ErrUnknownKind is returned when a kind has no resolution rule.
var ErrUnknownKind = errors.New("unknown base path kind")

// ErrNoCustomDir is returned when the Custom kind is requested without a
// configured directory.
var ErrNoCustomDir = errors.New("no custom directory configured")

// ErrNoManifest is returned when no project manifest is found walking up
// towards the filesystem root.
var ErrNoManifest = errors.New("no project manifest found")

// Resolver defines an interface for resolving a base-path kind to an
// absolute directory. It exists so that the config store never reads
// process-global state directly; tests inject their own resolvers.
type Resolver interface {
	Resolve(kind Kind) (string, error)
}

// OS resolves base paths against the running process. The zero value is
// ready to use.
type OS struct {
	// CustomDir is the directory returned for the Custom kind.
	CustomDir string
	// Manifest marks the project root; defaults to DefaultManifest.
	Manifest string
	// StartDir overrides where the Project walk starts; defaults to the
	// executable's directory.
	StartDir string
}

// Resolve implements Resolver.
func (r OS) Resolve(kind Kind) (string, error) {
	switch kind {
	case WorkingDir:
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("locating working directory: %w", err)
		}

		return dir, nil
	case Executable:
		return executableDir()
	case Project:
		return r.projectDir()
	case Custom:
		if r.CustomDir == "" {
			return "", ErrNoCustomDir
		}

		dir, err := filepath.Abs(r.CustomDir)
		if err != nil {
			return "", fmt.Errorf("resolving custom directory %q: %w", r.CustomDir, err)
		}

		return dir, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}

	return filepath.Dir(exe), nil
}

// projectDir walks up from the start directory until it finds the manifest
// file, stopping at the filesystem root.
func (r OS) projectDir() (string, error) {
	manifest := r.Manifest
	if manifest == "" {
		manifest = DefaultManifest
	}

	start := r.StartDir

	if start == "" {
		var err error

		start, err = executableDir()
		if err != nil {
			return "", err
		}
	}

	dir := start

	for {
		_, err := os.Stat(filepath.Join(dir, manifest))
		if err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: walked up from %q looking for %q", ErrNoManifest, start, manifest)
		}

		dir = parent
	}
}

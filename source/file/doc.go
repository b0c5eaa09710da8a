// Package file provides a file-based byte source for the config store.
//
// The file is read at construction time and cached; subsequent Fetch calls
// return the same data without touching the filesystem again, so one load
// observes one consistent snapshot.
//
// The source also reports its file extension as a format hint, letting the
// store pick the matching deserializer for "config.yaml" or "config.json"
// without being told the format explicitly.
//
// Usage:
//
//	src, err := file.New("/etc/app/config.yaml")
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := src.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file

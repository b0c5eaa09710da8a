// Package basepath resolves the directories that relative configuration
// file paths are interpreted against: the working directory, the directory
// of the executable, the project root (marked by a manifest file such as
// go.mod), or an explicit custom directory.
//
// The Resolver interface keeps this ambient process state out of the config
// store itself; the store is handed a Resolver and tests substitute fakes.
package basepath

// Package logging provides structured logging using Go's standard library
// log/slog. It emits JSON records and is used by the hconfig CLI; the
// library packages log through whatever default logger the host application
// installs.
package logging

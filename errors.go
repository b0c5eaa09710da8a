package config

import "errors"

// ErrDecode is returned when data matches none of the registered formats.
var ErrDecode = errors.New("data matches no registered format")

// ErrUnknownFormat is returned when a forced format has no registered
// deserializer.
var ErrUnknownFormat = errors.New("format is not registered")

// ErrEmptyModuleName is returned when an Fx module is requested with an
// empty name.
var ErrEmptyModuleName = errors.New("module name must not be empty")

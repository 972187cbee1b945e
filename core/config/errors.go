package config

import "errors"

// ErrNilTarget is returned when Load is called with a nil pointer.
var ErrNilTarget = errors.New("config: nil target")

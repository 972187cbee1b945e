package anycell

import "errors"

// ErrTypeMismatch is returned when a cell is recovered with a type other than
// the one it was created with.
var ErrTypeMismatch = errors.New("type mismatch")

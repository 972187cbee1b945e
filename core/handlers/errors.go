package handlers

import "errors"

// ErrArityMismatch is returned when a list created for one number of payload
// parameters is requested with another.
var ErrArityMismatch = errors.New("arity mismatch")

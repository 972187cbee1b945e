package eventqueue

import (
	"errors"

	"github.com/dmitrymomot/eventqueue/core/handlers"
	"github.com/dmitrymomot/eventqueue/pkg/anycell"
)

var (
	// ErrTypeMismatch is returned when a payload type differs from the one
	// already bound to the event key.
	ErrTypeMismatch = anycell.ErrTypeMismatch

	// ErrArityMismatch is returned when a call supplies a payload for an event
	// registered without one, or the other way round.
	ErrArityMismatch = handlers.ErrArityMismatch

	// ErrHandlerAlreadyRemoved is returned when removing a handler that is no
	// longer registered.
	ErrHandlerAlreadyRemoved = errors.New("handler already removed")

	// ErrNilHandler is returned when registering a nil handler function.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNilHandle is returned when removing through a nil handle.
	ErrNilHandle = errors.New("handle cannot be nil")

	// ErrForeignHandle is returned when a handle is passed to a queue other
	// than the one that created it.
	ErrForeignHandle = errors.New("handle belongs to another queue")

	// ErrHandlerPanic is returned by handlers wrapped with RecoverPanics when
	// the wrapped function panics.
	ErrHandlerPanic = errors.New("handler panicked")
)

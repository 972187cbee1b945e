package eventqueue

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/eventqueue/core/handlers"
)

// Registration is implemented by every *Handle and accepted by Queue.Remove.
type Registration[K comparable] interface {
	// Event returns the key the handler was registered under.
	Event() K

	// ID returns a unique identifier of the registration, used in logs.
	ID() string

	// IsRemoved reports whether the handler is no longer registered.
	IsRemoved() bool

	tombstone(q *Queue[K]) error
}

// Handle identifies one registered handler. It references the handler by
// event key and entry id and does not keep it alive.
type Handle[K comparable, T any] struct {
	q       *Queue[K]
	event   K
	id      uint64
	uid     string
	removed bool
}

var _ Registration[string] = (*Handle[string, int])(nil)

// Event returns the key the handler was registered under.
func (h *Handle[K, T]) Event() K {
	if h == nil {
		var zero K
		return zero
	}
	return h.event
}

// ID returns the registration's UUID, generated on first use. Handles not
// created by Register have no ID.
func (h *Handle[K, T]) ID() string {
	if h == nil || h.q == nil {
		return ""
	}
	if h.uid == "" {
		h.uid = uuid.NewString()
	}
	return h.uid
}

// IsRemoved reports whether the handler has been removed, either through this
// handle or by Queue.RemoveAll.
func (h *Handle[K, T]) IsRemoved() bool {
	if h == nil || h.removed {
		return true
	}
	l, ok := h.list()
	return !ok || !l.IsLive(h.id)
}

// Remove is shorthand for removing h from the queue that created it.
func (h *Handle[K, T]) Remove() error {
	if h == nil {
		return ErrNilHandle
	}
	if h.q == nil {
		return ErrForeignHandle
	}
	return h.q.Remove(h)
}

func (h *Handle[K, T]) tombstone(q *Queue[K]) error {
	switch {
	case h == nil:
		return ErrNilHandle
	case h.q == nil || h.q != q:
		return ErrForeignHandle
	case h.removed:
		return ErrHandlerAlreadyRemoved
	}

	h.removed = true
	if l, ok := h.list(); !ok || !l.Tombstone(h.id) {
		return ErrHandlerAlreadyRemoved
	}
	return nil
}

func (h *Handle[K, T]) list() (*handlers.List[T], bool) {
	if h.q == nil {
		return nil, false
	}
	s, ok := h.q.events[h.event]
	if !ok {
		return nil, false
	}
	l, err := handlers.ListOf[T](s)
	return l, err == nil
}

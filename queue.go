package eventqueue

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/eventqueue/core/handlers"
	"github.com/dmitrymomot/eventqueue/core/logger"
)

// HandlerFunc handles an event carrying a payload of type T.
// A non-nil error stops the dispatch pass it was called from.
type HandlerFunc[T any] func(T) error

// Void is the payload type of events fired without a payload.
type Void = handlers.Void

// Arity is the number of payload parameters an event key was registered with.
type Arity = handlers.Arity

// Arity values.
const (
	Arity0 = handlers.Arity0
	Arity1 = handlers.Arity1
)

// Queue maps event keys to the handlers registered for them.
//
// A key's payload type and arity are fixed by its first registration and
// never change, even after every handler of the key has been removed.
//
// Queue is not safe for concurrent use. Handlers may call back into the queue
// that is dispatching them.
type Queue[K comparable] struct {
	events      map[K]*handlers.Set
	logger      *slog.Logger
	name        string
	logDispatch bool
}

// New creates an empty queue.
//
// Example:
//
//	q := eventqueue.New[string](eventqueue.WithLogger(log))
func New[K comparable](opts ...Option) *Queue[K] {
	o := options{
		logger: logger.Discard(),
		name:   DefaultName,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue[K]{
		events:      make(map[K]*handlers.Set),
		logger:      o.logger,
		name:        o.name,
		logDispatch: o.logDispatch,
	}
}

// Register adds fn under key and returns a handle for removing it.
//
// The first registration under key fixes its payload type. Later calls fail
// with ErrArityMismatch when exactly one side is Void and with ErrTypeMismatch
// when both carry payloads of different types.
//
// Example:
//
//	h, err := eventqueue.Register(q, "user.created", func(u User) error {
//	    return sendWelcome(u.Email)
//	})
func Register[K comparable, T any](q *Queue[K], key K, fn HandlerFunc[T]) (*Handle[K, T], error) {
	if fn == nil {
		return nil, fmt.Errorf("register %v: %w", key, ErrNilHandler)
	}

	s, ok := q.events[key]
	if !ok {
		s = handlers.NewSet[T]()
		q.events[key] = s
	}
	l, err := handlers.ListOf[T](s)
	if err != nil {
		q.mismatch("register", key, s, err)
		return nil, fmt.Errorf("register %v: %w", key, err)
	}

	h := &Handle[K, T]{
		q:     q,
		event: key,
		id:    l.Append(handlers.Func[T](fn)),
	}

	if !q.debugEnabled() {
		return h, nil
	}
	q.logger.Debug("handler registered",
		logger.Component(q.name),
		logger.Event(key),
		logger.HandlerID(h.ID()),
		logger.Arity(int(s.Arity())),
		logger.PayloadType(s.PayloadType()),
	)

	return h, nil
}

// RegisterVoid adds a handler for an event fired without payload.
func RegisterVoid[K comparable](q *Queue[K], key K, fn func() error) (*Handle[K, Void], error) {
	if fn == nil {
		return nil, fmt.Errorf("register %v: %w", key, ErrNilHandler)
	}
	return Register(q, key, func(Void) error { return fn() })
}

// Fire invokes, in registration order, every handler registered under key
// with payload. Firing a key nobody registered for does nothing.
//
// The set of handlers a pass may invoke is fixed when it starts: handlers
// registered while it runs are first invoked by the next Fire, and handlers
// removed while it runs are skipped if not reached yet. The first handler
// error stops the pass and is returned wrapped. Panics are not recovered.
func Fire[K comparable, T any](q *Queue[K], key K, payload T) error {
	s, ok := q.events[key]
	if !ok {
		return nil
	}
	l, err := handlers.ListOf[T](s)
	if err != nil {
		q.mismatch("fire", key, s, err)
		return fmt.Errorf("fire %v: %w", key, err)
	}

	logDispatch := q.logDispatch && q.debugEnabled()
	var start time.Time
	if logDispatch {
		start = time.Now()
	}

	invoked := 0
	err = l.ForEachLive(func(fn handlers.Func[T]) error {
		invoked++
		return fn(payload)
	})

	if logDispatch {
		q.logger.Debug("event fired",
			logger.Component(q.name),
			logger.Event(key),
			logger.Count("handlers", invoked),
			logger.Duration(time.Since(start)),
		)
	}

	if err != nil {
		q.logger.Error("handler failed",
			logger.Component(q.name),
			logger.Event(key),
			logger.Count("handlers_invoked", invoked),
			logger.Error(err),
		)
		return fmt.Errorf("fire %v: %w", key, err)
	}
	return nil
}

// FireVoid invokes every handler registered under key without payload.
func FireVoid[K comparable](q *Queue[K], key K) error {
	return Fire(q, key, Void{})
}

// Remove unregisters the handler behind h. Removing the same handler twice
// fails with ErrHandlerAlreadyRemoved. A handler removed while its event is
// being fired is not invoked for the rest of that pass.
func (q *Queue[K]) Remove(h Registration[K]) error {
	if h == nil {
		return ErrNilHandle
	}
	if err := h.tombstone(q); err != nil {
		q.logger.Warn("handler removal rejected",
			logger.Component(q.name),
			logger.Event(h.Event()),
			logger.HandlerID(h.ID()),
			logger.Error(err),
		)
		return fmt.Errorf("remove %v: %w", h.Event(), err)
	}

	if !q.debugEnabled() {
		return nil
	}
	q.logger.Debug("handler removed",
		logger.Component(q.name),
		logger.Event(h.Event()),
		logger.HandlerID(h.ID()),
	)
	return nil
}

// RemoveAll unregisters every handler of key and returns how many there were.
// The key keeps its payload type.
func (q *Queue[K]) RemoveAll(key K) int {
	s, ok := q.events[key]
	if !ok {
		return 0
	}
	n := s.TombstoneAll()
	s.Compact()

	if !q.debugEnabled() {
		return n
	}
	q.logger.Debug("handlers removed",
		logger.Component(q.name),
		logger.Event(key),
		logger.Count("handlers", n),
	)
	return n
}

// Has reports whether anything was ever registered under key.
func (q *Queue[K]) Has(key K) bool {
	_, ok := q.events[key]
	return ok
}

// Count returns the number of live handlers under key.
func (q *Queue[K]) Count(key K) int {
	s, ok := q.events[key]
	if !ok {
		return 0
	}
	return s.Len()
}

// Arity returns the arity fixed for key, if the key is known.
func (q *Queue[K]) Arity(key K) (Arity, bool) {
	s, ok := q.events[key]
	if !ok {
		return 0, false
	}
	return s.Arity(), true
}

// Keys returns every key that has been registered, in no particular order.
func (q *Queue[K]) Keys() []K {
	return slices.Collect(maps.Keys(q.events))
}

func (q *Queue[K]) mismatch(action string, key K, s *handlers.Set, err error) {
	q.logger.Warn("event contract mismatch",
		logger.Component(q.name),
		logger.Action(action),
		logger.Event(key),
		logger.Arity(int(s.Arity())),
		logger.PayloadType(s.PayloadType()),
		logger.Error(err),
	)
}

func (q *Queue[K]) debugEnabled() bool {
	return q.logger.Enabled(context.Background(), slog.LevelDebug)
}

package eventqueue

import (
	"fmt"
	"runtime/debug"
)

// Decorator wraps a handler function to add cross-cutting behavior, the same
// way HTTP middleware wraps a handler.
//
// Example:
//
//	func Logged[T any](log *slog.Logger) eventqueue.Decorator[T] {
//	    return func(next eventqueue.HandlerFunc[T]) eventqueue.HandlerFunc[T] {
//	        return func(payload T) error {
//	            err := next(payload)
//	            if err != nil {
//	                log.Error("handler failed", "error", err)
//	            }
//	            return err
//	        }
//	    }
//	}
type Decorator[T any] func(HandlerFunc[T]) HandlerFunc[T]

// ApplyDecorators wraps fn with decorators. The first decorator becomes the
// outermost wrapper and runs first.
//
// Example:
//
//	fn := eventqueue.ApplyDecorators(handle,
//	    eventqueue.RecoverPanics[Order](),
//	    eventqueue.Filter(func(o Order) bool { return o.Total > 0 }),
//	)
//
// Execution order: RecoverPanics -> Filter -> handle
func ApplyDecorators[T any](fn HandlerFunc[T], decorators ...Decorator[T]) HandlerFunc[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// RecoverPanics converts a panic in the wrapped handler into an error
// matching ErrHandlerPanic. The queue itself never recovers panics; apply
// this to handlers whose failures should stop the pass with an error instead.
func RecoverPanics[T any]() Decorator[T] {
	return func(next HandlerFunc[T]) HandlerFunc[T] {
		return func(payload T) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %v\n%s", ErrHandlerPanic, r, debug.Stack())
				}
			}()
			return next(payload)
		}
	}
}

// Filter invokes the wrapped handler only for payloads that satisfy keep.
func Filter[T any](keep func(T) bool) Decorator[T] {
	return func(next HandlerFunc[T]) HandlerFunc[T] {
		return func(payload T) error {
			if !keep(payload) {
				return nil
			}
			return next(payload)
		}
	}
}

// Once registers fn under key so that it runs at most once: the handler
// removes itself before its body runs, so a nested Fire of the same key from
// inside fn does not invoke it again.
func Once[K comparable, T any](q *Queue[K], key K, fn HandlerFunc[T]) (*Handle[K, T], error) {
	if fn == nil {
		return nil, fmt.Errorf("register %v: %w", key, ErrNilHandler)
	}

	var h *Handle[K, T]
	h, err := Register(q, key, func(payload T) error {
		if err := q.Remove(h); err != nil {
			return err
		}
		return fn(payload)
	})
	return h, err
}

// OnceVoid is Once for events without payload.
func OnceVoid[K comparable](q *Queue[K], key K, fn func() error) (*Handle[K, Void], error) {
	if fn == nil {
		return nil, fmt.Errorf("register %v: %w", key, ErrNilHandler)
	}
	return Once(q, key, func(Void) error { return fn() })
}

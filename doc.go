// Package eventqueue provides an in-process, synchronous event dispatcher.
// Callers register handlers against event keys of any comparable type and
// later fire a key, invoking every handler registered for it with an optional
// typed payload.
//
// # Package Organization
//
//	github.com/dmitrymomot/eventqueue                - Queue, handles, decorators, configuration
//	github.com/dmitrymomot/eventqueue/core/handlers  - Per-key handler lists with tombstone removal
//	github.com/dmitrymomot/eventqueue/core/logger    - slog construction and attribute helpers
//	github.com/dmitrymomot/eventqueue/core/config    - Cached environment configuration loading
//	github.com/dmitrymomot/eventqueue/pkg/anycell    - Type-erased value cell with checked cast
//
// # Basic Usage
//
//	q := eventqueue.New[string]()
//
//	h, err := eventqueue.Register(q, "user.created", func(u User) error {
//		return sendWelcome(u.Email)
//	})
//	if err != nil {
//		return err
//	}
//
//	if err := eventqueue.Fire(q, "user.created", User{Email: "user@example.com"}); err != nil {
//		return err
//	}
//
//	if err := q.Remove(h); err != nil {
//		return err
//	}
//
// Events without payload use RegisterVoid and FireVoid:
//
//	eventqueue.RegisterVoid(q, "shutdown", func() error { return flush() })
//	eventqueue.FireVoid(q, "shutdown")
//
// # Event Contracts
//
// The first registration under a key fixes its payload type. Every later
// Register or Fire for that key must use the same type: supplying a payload to
// a Void key, or none to a payload key, fails with ErrArityMismatch; supplying
// a payload of another type fails with ErrTypeMismatch. The contract survives
// removal of all handlers of a key. Firing a key nobody registered for is not
// an error.
//
// # Dispatch Semantics
//
// Fire runs every handler synchronously in the caller's goroutine, in
// registration order. Handlers may register, remove and fire from inside
// their own invocation:
//
//   - a handler removed during a pass is not invoked later in that pass
//   - a handler registered during a pass is first invoked by the next Fire
//   - removed handlers are compacted away when the pass ends
//
// The first handler error ends the pass and is returned by Fire wrapped with
// the event key. Panics are not recovered; wrap handlers with RecoverPanics to
// turn them into errors.
//
// # Removal
//
// Register returns a *Handle. Removing a handler twice fails with
// ErrHandlerAlreadyRemoved so that double removals surface as bugs:
//
//	_ = q.Remove(h)
//	err := q.Remove(h) // errors.Is(err, eventqueue.ErrHandlerAlreadyRemoved)
//
// Once registers a handler that removes itself on its first invocation.
//
// # Typed Views
//
// Using binds a payload type once for chained calls:
//
//	users := eventqueue.Using[User](q)
//	users.Register("user.created", sendWelcome)
//	users.Fire("user.created", u)
//
// # Configuration
//
// Config is loadable from the environment (EVENTQUEUE_NAME,
// EVENTQUEUE_LOG_DISPATCH) with LoadConfig and applied with NewFromConfig.
//
// # Thread Safety
//
// A Queue is meant to be owned by one goroutine. It performs no locking; wrap
// every call in an external mutex if it must be shared.
package eventqueue

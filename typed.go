package eventqueue

// Typed is a view of a Queue bound to one payload type, so the type is
// spelled once instead of at every call. It holds no state of its own and
// may be created as often as needed.
//
// Example:
//
//	orders := eventqueue.Using[Order](q)
//	orders.Register("order.placed", reserveStock)
//	orders.Register("order.placed", notifyWarehouse)
//	err := orders.Fire("order.placed", order)
type Typed[K comparable, T any] struct {
	q *Queue[K]
}

// Using returns a view of q for payload type T.
func Using[T any, K comparable](q *Queue[K]) Typed[K, T] {
	return Typed[K, T]{q: q}
}

// Register is Register(q, key, fn).
func (t Typed[K, T]) Register(key K, fn HandlerFunc[T]) (*Handle[K, T], error) {
	return Register(t.q, key, fn)
}

// Once is Once(q, key, fn).
func (t Typed[K, T]) Once(key K, fn HandlerFunc[T]) (*Handle[K, T], error) {
	return Once(t.q, key, fn)
}

// Fire is Fire(q, key, payload).
func (t Typed[K, T]) Fire(key K, payload T) error {
	return Fire(t.q, key, payload)
}

// Queue returns the underlying queue.
func (t Typed[K, T]) Queue() *Queue[K] {
	return t.q
}

// Package handlers implements the per-key handler storage used by the event
// queue: an insertion-ordered list of handler entries that tolerates mutation
// while it is being dispatched, and an arity-tagged, type-erased wrapper that
// lets lists of different payload types live in one map.
//
// # Lists
//
// List[T] stores Func[T] entries. Removal never shrinks the list in place;
// it marks the entry as a tombstone. Tombstones are dropped by Compact, which
// runs automatically when the outermost dispatch pass over the list ends.
// Entries are addressed by ids that are never reused, so an id stays valid
// across compaction for as long as its entry is live.
//
// A dispatch pass (ForEachLive) visits the entries present when it started,
// skipping any entry that is a tombstone at the time it is reached. Entries
// appended during the pass are left for the next one:
//
//	l := new(handlers.List[int])
//	var second uint64
//	l.Append(func(v int) error {
//		l.Tombstone(second) // second is not invoked in this pass
//		l.Append(func(int) error { return nil }) // runs on the next pass
//		return nil
//	})
//	second = l.Append(func(int) error { return nil })
//	_ = l.ForEachLive(func(fn handlers.Func[int]) error { return fn(3) })
//
// # Sets
//
// Set erases the payload type of a List behind an anycell.Cell and records the
// arity fixed at creation: 0 for Void, 1 for everything else. Recovering the
// list with the wrong payload type fails with anycell.ErrTypeMismatch when the
// arity agrees and with ErrArityMismatch when it does not.
//
// Neither type is safe for concurrent use.
package handlers

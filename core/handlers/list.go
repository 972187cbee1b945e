package handlers

import (
	"cmp"
	"slices"
)

// Func is the stored shape of an event handler.
type Func[T any] func(T) error

type entry[T any] struct {
	id   uint64
	fn   Func[T]
	live bool
}

// List is an ordered collection of handlers for a single event key.
// The zero value is an empty list ready to use.
type List[T any] struct {
	entries []entry[T]
	seq     uint64
	depth   int // number of dispatch passes currently running
	dirty   bool
}

// Append adds fn as a live entry at the end of the list and returns its id.
func (l *List[T]) Append(fn Func[T]) uint64 {
	l.seq++
	l.entries = append(l.entries, entry[T]{id: l.seq, fn: fn, live: true})
	return l.seq
}

// Tombstone marks the entry with the given id as removed.
// It returns false if the id is unknown or already a tombstone.
func (l *List[T]) Tombstone(id uint64) bool {
	i, ok := l.find(id)
	if !ok || !l.entries[i].live {
		return false
	}
	l.entries[i].live = false
	l.entries[i].fn = nil
	l.dirty = true
	return true
}

// TombstoneAll marks every live entry as removed and returns how many were.
func (l *List[T]) TombstoneAll() int {
	n := 0
	for i := range l.entries {
		if l.entries[i].live {
			l.entries[i].live = false
			l.entries[i].fn = nil
			n++
		}
	}
	if n > 0 {
		l.dirty = true
	}
	return n
}

// IsLive reports whether id refers to an entry that has not been removed.
func (l *List[T]) IsLive(id uint64) bool {
	i, ok := l.find(id)
	return ok && l.entries[i].live
}

// Len returns the number of live entries.
func (l *List[T]) Len() int {
	n := 0
	for i := range l.entries {
		if l.entries[i].live {
			n++
		}
	}
	return n
}

// Cap returns the number of physical entries, tombstones included.
func (l *List[T]) Cap() int {
	return len(l.entries)
}

// Dispatching reports whether a ForEachLive pass is running.
func (l *List[T]) Dispatching() bool {
	return l.depth > 0
}

// ForEachLive runs one dispatch pass, calling fn for every entry that existed
// when the pass started and is still live when it is reached. Entries
// appended by fn are not visited. The first error returned by fn ends the
// pass and is returned.
//
// Passes may nest (fn may dispatch the same list again); tombstones are
// compacted once the outermost pass returns, even when it ends with an error
// or a panic.
func (l *List[T]) ForEachLive(fn func(Func[T]) error) error {
	l.depth++
	defer func() {
		l.depth--
		if l.depth == 0 {
			l.Compact()
		}
	}()

	n := len(l.entries)
	for i := 0; i < n; i++ {
		// Re-read on every step: fn may append and reallocate the backing array.
		e := l.entries[i]
		if !e.live {
			continue
		}
		if err := fn(e.fn); err != nil {
			return err
		}
	}
	return nil
}

// Compact drops tombstones, keeping live entries in order.
// It does nothing while a dispatch pass is running.
func (l *List[T]) Compact() {
	if l.depth > 0 || !l.dirty {
		return
	}
	l.entries = slices.DeleteFunc(l.entries, func(e entry[T]) bool {
		return !e.live
	})
	l.dirty = false
}

// find locates id by binary search; ids grow strictly along the slice.
func (l *List[T]) find(id uint64) (int, bool) {
	return slices.BinarySearchFunc(l.entries, id, func(e entry[T], id uint64) int {
		return cmp.Compare(e.id, id)
	})
}

package handlers

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/eventqueue/pkg/anycell"
)

// Void marks a handler that takes no payload.
type Void struct{}

// Arity is the number of payload parameters handlers of a key accept.
type Arity int

const (
	// Arity0 is the arity of Void handlers.
	Arity0 Arity = 0
	// Arity1 is the arity of handlers taking a single payload.
	Arity1 Arity = 1
)

// String implements fmt.Stringer.
func (a Arity) String() string {
	switch a {
	case Arity0:
		return "0 parameters"
	case Arity1:
		return "1 parameter"
	}
	return fmt.Sprintf("%d parameters", int(a))
}

var voidType = reflect.TypeFor[Void]()

// ArityOf returns the arity implied by payload type T.
func ArityOf[T any]() Arity {
	if reflect.TypeFor[T]() == voidType {
		return Arity0
	}
	return Arity1
}

// view is the payload-independent part of a List's method set.
type view interface {
	Len() int
	Cap() int
	TombstoneAll() int
	Dispatching() bool
	Compact()
}

// Set is a type-erased List together with the arity it was created with.
type Set struct {
	cell    anycell.Cell // holds *List[T]
	list    view         // same *List[T], for operations that need no payload type
	payload reflect.Type
	arity   Arity
}

// NewSet creates an empty set for handlers of payload type T.
func NewSet[T any]() *Set {
	l := new(List[T])
	s := &Set{
		cell:  anycell.New(l),
		list:  l,
		arity: ArityOf[T](),
	}
	if s.arity == Arity1 {
		s.payload = reflect.TypeFor[T]()
	}
	return s
}

// Arity returns the arity fixed at creation.
func (s *Set) Arity() Arity {
	return s.arity
}

// PayloadType returns the payload type of the stored list, or nil for Void.
func (s *Set) PayloadType() reflect.Type {
	return s.payload
}

// Len returns the number of live handlers.
func (s *Set) Len() int {
	return s.list.Len()
}

// Cap returns the number of physical entries, tombstones included.
func (s *Set) Cap() int {
	return s.list.Cap()
}

// TombstoneAll removes every live handler and returns how many were removed.
func (s *Set) TombstoneAll() int {
	return s.list.TombstoneAll()
}

// Dispatching reports whether a dispatch pass over the list is running.
func (s *Set) Dispatching() bool {
	return s.list.Dispatching()
}

// Compact drops tombstones unless a dispatch pass is running.
func (s *Set) Compact() {
	s.list.Compact()
}

// ListOf recovers the typed list stored in s.
//
// A request whose arity differs from the set's fails with ErrArityMismatch.
// A request with the right arity but another payload type fails with
// anycell.ErrTypeMismatch.
func ListOf[T any](s *Set) (*List[T], error) {
	l, err := anycell.Cast[*List[T]](s.cell)
	if err == nil {
		return l, nil
	}
	if want := ArityOf[T](); want != s.arity {
		return nil, fmt.Errorf("%w: previous operations on this event used %s, got %s",
			ErrArityMismatch, s.arity, want)
	}
	return nil, fmt.Errorf("%w: event payload is %s, got %s",
		anycell.ErrTypeMismatch, s.payload, reflect.TypeFor[T]())
}

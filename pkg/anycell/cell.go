package anycell

import (
	"fmt"
	"reflect"
)

// Cell holds a single value of any type behind a uniform handle.
// Copies of a Cell share the same underlying value.
type Cell struct {
	typ reflect.Type
	ptr any // always *T where T is typ
}

// New moves v into a new cell tagged with the static type T.
func New[T any](v T) Cell {
	p := new(T)
	*p = v
	return Cell{typ: reflect.TypeFor[T](), ptr: p}
}

// Type returns the tag the cell was created with, or nil for the zero Cell.
func (c Cell) Type() reflect.Type {
	return c.typ
}

// IsZero reports whether the cell holds no value.
func (c Cell) IsZero() bool {
	return c.typ == nil
}

// String returns a short description of the cell, e.g. "cell[int]".
func (c Cell) String() string {
	if c.typ == nil {
		return "cell[<empty>]"
	}
	return "cell[" + c.typ.String() + "]"
}

// Ref returns a pointer to the stored value when T is exactly the cell's tag.
func Ref[T any](c Cell) (*T, error) {
	want := reflect.TypeFor[T]()
	if c.typ != want {
		return nil, mismatch(want, c.typ)
	}
	// The tag check above guarantees the assertion holds.
	return c.ptr.(*T), nil
}

// Cast returns a copy of the stored value when T is exactly the cell's tag.
func Cast[T any](c Cell) (T, error) {
	p, err := Ref[T](c)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// MustCast is like Cast but panics on mismatch.
func MustCast[T any](c Cell) T {
	v, err := Cast[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

func mismatch(want, got reflect.Type) error {
	stored := "<empty>"
	if got != nil {
		stored = got.String()
	}
	return fmt.Errorf("%w: cannot cast %s to %s", ErrTypeMismatch, stored, want)
}

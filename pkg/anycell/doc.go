// Package anycell provides a type-erased value container with checked recovery.
//
// A Cell owns exactly one value together with the static type it was created
// with. The only way to get the value back is through Cast or Ref, which
// succeed when the requested type is identical to the stored tag and fail with
// ErrTypeMismatch otherwise. There is no implicit conversion and no interface
// satisfaction matching: a Cell created from an io.Reader value can only be
// recovered as io.Reader, never as *os.File.
//
// # Usage
//
//	c := anycell.New(UserCreated{ID: "42"})
//
//	evt, err := anycell.Cast[UserCreated](c)
//	if err != nil {
//		return err
//	}
//
//	_, err = anycell.Cast[string](c)
//	errors.Is(err, anycell.ErrTypeMismatch) // true
//
// # In-place access
//
// Ref returns a pointer to the stored value, so callers can mutate it without
// copying it out and back in. The value is moved into its own heap slot once,
// at construction, which makes cells usable for values that must not be
// copied after creation (values embedding a sync.Mutex, exclusive resource
// owners and the like):
//
//	c := anycell.New(make([]int, 0))
//	s, _ := anycell.Ref[[]int](c)
//	*s = append(*s, 1)
//
// The zero Cell is empty and every cast on it fails.
package anycell

package eventqueue_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventqueue"
)

type record struct {
	B int
	C string
}

func TestFire_OneEventOneHandler(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	called := false
	_, err := eventqueue.Register(q, "test0", func(i int) error {
		called = true
		assert.Equal(t, 3, i)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, eventqueue.Fire(q, "test0", 3))
	assert.True(t, called)
}

func TestFire_OneEventTwoHandlers(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	var got []int
	handler := func(i int) error {
		got = append(got, i)
		return nil
	}
	_, err := eventqueue.Register(q, "e", handler)
	require.NoError(t, err)
	_, err = eventqueue.Register(q, "e", handler)
	require.NoError(t, err)

	require.NoError(t, eventqueue.Fire(q, "e", 4))
	assert.Equal(t, []int{4, 4}, got)
}

func TestFire_TwoEventsOneHandlerEach(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	got := map[string]int{}
	for _, key := range []string{"test0", "test1"} {
		_, err := eventqueue.Register(q, key, func(i int) error {
			got[key] = i
			return nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, eventqueue.Fire(q, "test0", 5))
	require.NoError(t, eventqueue.Fire(q, "test1", 6))
	assert.Equal(t, map[string]int{"test0": 5, "test1": 6}, got)
}

func TestFire_InsertionOrder(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	var order []int
	for i := range 5 {
		_, err := eventqueue.RegisterVoid(q, "e", func() error {
			order = append(order, i)
			return nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, eventqueue.FireVoid(q, "e"))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFire_NoHandlersIsNoop(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	assert.NoError(t, eventqueue.Fire(q, "nobody", 1))
	assert.NoError(t, eventqueue.FireVoid(q, "nobody"))
	assert.NoError(t, eventqueue.Fire(q, "nobody", "other type"))
	assert.False(t, q.Has("nobody"))
}

func TestFire_PayloadTypes(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		q := eventqueue.New[string]()
		var got int
		_, err := eventqueue.Register(q, "test0", func(i int) error { got = i; return nil })
		require.NoError(t, err)
		require.NoError(t, eventqueue.Fire(q, "test0", 3))
		assert.Equal(t, 3, got)
	})

	t.Run("string", func(t *testing.T) {
		q := eventqueue.New[string]()
		var got string
		_, err := eventqueue.Register(q, "test0", func(s string) error { got = s; return nil })
		require.NoError(t, err)
		require.NoError(t, eventqueue.Fire(q, "test0", "test"))
		assert.Equal(t, "test", got)
	})

	t.Run("struct", func(t *testing.T) {
		q := eventqueue.New[string]()
		original := record{B: 3, C: "test"}
		var got record
		_, err := eventqueue.Register(q, "test0", func(r record) error { got = r; return nil })
		require.NoError(t, err)
		require.NoError(t, eventqueue.Fire(q, "test0", original))
		assert.Equal(t, original, got)
	})

	t.Run("pointer", func(t *testing.T) {
		q := eventqueue.New[string]()
		original := &record{B: 1}
		var got *record
		_, err := eventqueue.Register(q, "test0", func(r *record) error { got = r; return nil })
		require.NoError(t, err)
		require.NoError(t, eventqueue.Fire(q, "test0", original))
		assert.Same(t, original, got)
	})

	t.Run("interface", func(t *testing.T) {
		q := eventqueue.New[string]()
		sentinel := errors.New("payload")
		var got error
		_, err := eventqueue.Register(q, "test0", func(e error) error { got = e; return nil })
		require.NoError(t, err)
		require.NoError(t, eventqueue.Fire[string, error](q, "test0", sentinel))
		assert.Same(t, sentinel, got)
	})

	t.Run("void", func(t *testing.T) {
		q := eventqueue.New[string]()
		called := false
		_, err := eventqueue.RegisterVoid(q, "test0", func() error { called = true; return nil })
		require.NoError(t, err)
		require.NoError(t, eventqueue.FireVoid(q, "test0"))
		assert.True(t, called)
	})
}

func TestFire_TypeAndArityMismatch(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()

	_, err := eventqueue.RegisterVoid(q, "test0", func() error { return nil })
	require.NoError(t, err)
	err = eventqueue.Fire(q, "test0", "test")
	require.ErrorIs(t, err, eventqueue.ErrArityMismatch)
	assert.NotErrorIs(t, err, eventqueue.ErrTypeMismatch)

	_, err = eventqueue.Register(q, "test1", func(int) error { return nil })
	require.NoError(t, err)
	err = eventqueue.FireVoid(q, "test1")
	require.ErrorIs(t, err, eventqueue.ErrArityMismatch)

	_, err = eventqueue.Register(q, "test2", func(string) error { return nil })
	require.NoError(t, err)
	err = eventqueue.Fire(q, "test2", 3)
	require.ErrorIs(t, err, eventqueue.ErrTypeMismatch)
	assert.NotErrorIs(t, err, eventqueue.ErrArityMismatch)
	assert.Contains(t, err.Error(), "fire test2")
}

func TestFire_DeliversExactValueAfterMismatch(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	var got []int
	_, err := eventqueue.Register(q, "k", func(i int) error {
		got = append(got, i)
		return nil
	})
	require.NoError(t, err)

	require.ErrorIs(t, eventqueue.Fire(q, "k", int64(7)), eventqueue.ErrTypeMismatch)
	require.NoError(t, eventqueue.Fire(q, "k", 7))
	assert.Equal(t, []int{7}, got)
}

func TestRegister_ArityMismatch(t *testing.T) {
	t.Parallel()

	t.Run("payload after void", func(t *testing.T) {
		q := eventqueue.New[string]()
		_, err := eventqueue.RegisterVoid(q, "k", func() error { return nil })
		require.NoError(t, err)

		h, err := eventqueue.Register(q, "k", func(int) error { return nil })
		require.ErrorIs(t, err, eventqueue.ErrArityMismatch)
		assert.Nil(t, h)
		assert.Equal(t, 1, q.Count("k"))
	})

	t.Run("void after payload", func(t *testing.T) {
		q := eventqueue.New[string]()
		_, err := eventqueue.Register(q, "k", func(string) error { return nil })
		require.NoError(t, err)

		_, err = eventqueue.RegisterVoid(q, "k", func() error { return nil })
		require.ErrorIs(t, err, eventqueue.ErrArityMismatch)
	})
}

func TestRegister_TypeMismatch(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	_, err := eventqueue.Register(q, "k", func(int) error { return nil })
	require.NoError(t, err)

	_, err = eventqueue.Register(q, "k", func(string) error { return nil })
	require.ErrorIs(t, err, eventqueue.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "register k")
}

func TestRegister_ContractSurvivesRemoval(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	h, err := eventqueue.Register(q, "k", func(int) error { return nil })
	require.NoError(t, err)
	require.NoError(t, q.Remove(h))
	require.NoError(t, eventqueue.Fire(q, "k", 1))

	assert.True(t, q.Has("k"))
	assert.Equal(t, 0, q.Count("k"))

	_, err = eventqueue.RegisterVoid(q, "k", func() error { return nil })
	assert.ErrorIs(t, err, eventqueue.ErrArityMismatch)
}

func TestRegister_NilHandler(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()

	_, err := eventqueue.Register[string, int](q, "k", nil)
	require.ErrorIs(t, err, eventqueue.ErrNilHandler)

	_, err = eventqueue.RegisterVoid(q, "k", nil)
	require.ErrorIs(t, err, eventqueue.ErrNilHandler)

	assert.False(t, q.Has("k"), "failed registration must not bind a contract")
}

func TestFire_HandlerErrorStopsPass(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	boom := errors.New("boom")
	var calls []string

	_, err := eventqueue.Register(q, "e", func(int) error {
		calls = append(calls, "first")
		return nil
	})
	require.NoError(t, err)
	_, err = eventqueue.Register(q, "e", func(int) error {
		calls = append(calls, "second")
		return boom
	})
	require.NoError(t, err)
	_, err = eventqueue.Register(q, "e", func(int) error {
		calls = append(calls, "third")
		return nil
	})
	require.NoError(t, err)

	err = eventqueue.Fire(q, "e", 1)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "fire e: boom", err.Error())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestFire_PanicPropagates(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	_, err := eventqueue.RegisterVoid(q, "e", func() error { panic("boom") })
	require.NoError(t, err)

	assert.PanicsWithValue(t, "boom", func() { _ = eventqueue.FireVoid(q, "e") })
	assert.Equal(t, 1, q.Count("e"), "queue stays usable after a panic")
}

func TestQueue_Introspection(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	_, err := eventqueue.Register(q, "payload", func(int) error { return nil })
	require.NoError(t, err)
	_, err = eventqueue.RegisterVoid(q, "void", func() error { return nil })
	require.NoError(t, err)
	_, err = eventqueue.RegisterVoid(q, "void", func() error { return nil })
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"payload", "void"}, q.Keys())
	assert.Equal(t, 1, q.Count("payload"))
	assert.Equal(t, 2, q.Count("void"))
	assert.Equal(t, 0, q.Count("missing"))

	a, ok := q.Arity("payload")
	require.True(t, ok)
	assert.Equal(t, eventqueue.Arity1, a)

	a, ok = q.Arity("void")
	require.True(t, ok)
	assert.Equal(t, eventqueue.Arity0, a)

	_, ok = q.Arity("missing")
	assert.False(t, ok)
}

func TestQueue_RemoveAll(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	calls := 0
	h1, err := eventqueue.Register(q, "e", func(int) error { calls++; return nil })
	require.NoError(t, err)
	h2, err := eventqueue.Register(q, "e", func(int) error { calls++; return nil })
	require.NoError(t, err)

	assert.Equal(t, 2, q.RemoveAll("e"))
	assert.Equal(t, 0, q.RemoveAll("e"))
	assert.Equal(t, 0, q.RemoveAll("missing"))

	assert.True(t, h1.IsRemoved())
	assert.True(t, h2.IsRemoved())
	require.ErrorIs(t, q.Remove(h1), eventqueue.ErrHandlerAlreadyRemoved)

	require.NoError(t, eventqueue.Fire(q, "e", 1))
	assert.Equal(t, 0, calls)
	assert.True(t, q.Has("e"))
}

func TestQueue_RemoveAllFromHandler(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	var calls []string
	_, err := eventqueue.RegisterVoid(q, "e", func() error {
		calls = append(calls, "first")
		q.RemoveAll("e")
		return nil
	})
	require.NoError(t, err)
	_, err = eventqueue.RegisterVoid(q, "e", func() error {
		calls = append(calls, "second")
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, eventqueue.FireVoid(q, "e"))
	require.NoError(t, eventqueue.FireVoid(q, "e"))
	assert.Equal(t, []string{"first"}, calls)
}

package eventqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventqueue"
)

type phase int

const (
	phaseB phase = iota
	phaseC
)

type topic string

type compositeKey struct {
	Tenant string
	Kind   int
}

func TestKeys_String(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[string]()
	var got int
	_, err := eventqueue.Register(q, "test0", func(i int) error { got = i; return nil })
	require.NoError(t, err)
	require.NoError(t, eventqueue.Fire(q, "test0", 3))
	assert.Equal(t, 3, got)
}

func TestKeys_Int(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[int]()
	var got int
	_, err := eventqueue.Register(q, 1, func(i int) error { got = i; return nil })
	require.NoError(t, err)
	require.NoError(t, eventqueue.Fire(q, 1, 3))
	assert.Equal(t, 3, got)
}

func TestKeys_Enum(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[phase]()
	got := map[phase]int{}
	for _, p := range []phase{phaseB, phaseC} {
		_, err := eventqueue.Register(q, p, func(i int) error { got[p] = i; return nil })
		require.NoError(t, err)
	}

	require.NoError(t, eventqueue.Fire(q, phaseB, 3))
	require.NoError(t, eventqueue.Fire(q, phaseC, 4))
	assert.Equal(t, map[phase]int{phaseB: 3, phaseC: 4}, got)
}

func TestKeys_NamedString(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[topic]()
	called := false
	_, err := eventqueue.RegisterVoid(q, topic("user.created"), func() error { called = true; return nil })
	require.NoError(t, err)
	require.NoError(t, eventqueue.FireVoid(q, "user.created"))
	assert.True(t, called)
}

func TestKeys_Struct(t *testing.T) {
	t.Parallel()

	q := eventqueue.New[compositeKey]()
	calls := 0
	key := compositeKey{Tenant: "acme", Kind: 2}
	_, err := eventqueue.RegisterVoid(q, key, func() error { calls++; return nil })
	require.NoError(t, err)

	require.NoError(t, eventqueue.FireVoid(q, compositeKey{Tenant: "acme", Kind: 2}))
	require.NoError(t, eventqueue.FireVoid(q, compositeKey{Tenant: "other", Kind: 2}))
	assert.Equal(t, 1, calls)
}

package bindings

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeCalls struct {
	exits, drops int
	exitRC       []int32
	dropRC       []int32
}

func (c *closeCalls) exit(unsafe.Pointer) int32 {
	rc := csSucceed
	if c.exits < len(c.exitRC) {
		rc = c.exitRC[c.exits]
	}
	c.exits++
	return rc
}

func (c *closeCalls) drop(unsafe.Pointer) int32 {
	rc := csSucceed
	if c.drops < len(c.dropRC) {
		rc = c.dropRC[c.drops]
	}
	c.drops++
	return rc
}

func TestRegistryPutGet(t *testing.T) {
	r := newRegistry()
	var a, b byte

	ha := r.put(unsafe.Pointer(&a))
	hb := r.put(unsafe.Pointer(&b))
	require.NotEqual(t, ha, hb)
	require.NotZero(t, ha)

	p, ok := r.get(hb)
	require.True(t, ok)
	assert.Equal(t, unsafe.Pointer(&b), p)

	_, ok = r.get(hb + 100)
	assert.False(t, ok)
}

func TestRegistryClose(t *testing.T) {
	r := newRegistry()
	var ctx byte
	h := r.put(unsafe.Pointer(&ctx))

	calls := &closeCalls{}
	require.NoError(t, r.close(h, calls.exit, calls.drop))
	assert.Equal(t, 1, calls.exits)
	assert.Equal(t, 1, calls.drops)

	require.ErrorIs(t, r.close(h, calls.exit, calls.drop), ErrUnknownHandle)
	assert.Equal(t, 1, calls.exits)
}

func TestRegistryCloseRetriesOnlyDropAfterExit(t *testing.T) {
	r := newRegistry()
	var ctx byte
	h := r.put(unsafe.Pointer(&ctx))

	calls := &closeCalls{dropRC: []int32{0}}
	err := r.close(h, calls.exit, calls.drop)
	var ce *CodeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "cs_ctx_drop", ce.Op)

	_, ok := r.get(h)
	assert.False(t, ok, "an exited context must not be handed out")

	require.NoError(t, r.close(h, calls.exit, calls.drop))
	assert.Equal(t, 1, calls.exits)
	assert.Equal(t, 2, calls.drops)
	require.ErrorIs(t, r.close(h, calls.exit, calls.drop), ErrUnknownHandle)
}

func TestRegistryCloseRetriesExitOnFailure(t *testing.T) {
	r := newRegistry()
	var ctx byte
	h := r.put(unsafe.Pointer(&ctx))

	calls := &closeCalls{exitRC: []int32{0}}
	err := r.close(h, calls.exit, calls.drop)
	var ce *CodeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "ct_exit", ce.Op)
	assert.Zero(t, calls.drops)

	_, ok := r.get(h)
	assert.True(t, ok)

	require.NoError(t, r.close(h, calls.exit, calls.drop))
	assert.Equal(t, 2, calls.exits)
	assert.Equal(t, 1, calls.drops)
}

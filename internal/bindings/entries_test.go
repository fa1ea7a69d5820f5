package bindings

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func clearEntries(t *testing.T) {
	t.Helper()
	installed.Store(nil)
	t.Cleanup(func() { installed.Store(nil) })
}

func TestDispatchWithoutEntriesSucceeds(t *testing.T) {
	clearEntries(t)

	require.Equal(t, csSucceed, DispatchServer(1, 2, ServerRecord{}))
	require.Equal(t, csSucceed, DispatchClient(1, 2, ClientRecord{}))
}

func TestDispatchForwardsEverything(t *testing.T) {
	clearEntries(t)

	var msg, other [8]byte
	srvRec := ServerRecord{ptr: unsafe.Pointer(&msg)}
	cltRec := ClientRecord{ptr: unsafe.Pointer(&other)}

	const (
		ctx  ContextHandle    = 0xdead0001
		conn ConnectionHandle = 0xdead0002
	)

	for _, code := range []int32{1, 0, -1, -10, math.MaxInt32, math.MinInt32} {
		var gotSrv ServerRecord
		var gotClt ClientRecord
		var gotCtx ContextHandle
		var gotConn ConnectionHandle
		Install(
			func(c ContextHandle, cn ConnectionHandle, r ServerRecord) int32 {
				gotCtx, gotConn, gotSrv = c, cn, r
				return code
			},
			func(c ContextHandle, cn ConnectionHandle, r ClientRecord) int32 {
				gotClt = r
				return code
			},
		)

		require.Equal(t, code, DispatchServer(ctx, conn, srvRec))
		require.Equal(t, srvRec, gotSrv)
		require.Equal(t, ctx, gotCtx)
		require.Equal(t, conn, gotConn)

		require.Equal(t, code, DispatchClient(ctx, conn, cltRec))
		require.Equal(t, cltRec, gotClt)
	}
}

func TestInstallNilClientEntry(t *testing.T) {
	clearEntries(t)

	Install(func(ContextHandle, ConnectionHandle, ServerRecord) int32 { return 0 }, nil)
	require.Equal(t, int32(0), DispatchServer(0, 0, ServerRecord{}))
	require.Equal(t, csSucceed, DispatchClient(0, 0, ClientRecord{}))
}

func TestInstallationRestore(t *testing.T) {
	clearEntries(t)

	first := Install(func(ContextHandle, ConnectionHandle, ServerRecord) int32 { return 7 }, nil)
	second := Install(func(ContextHandle, ConnectionHandle, ServerRecord) int32 { return 8 }, nil)
	require.False(t, first.Active())
	require.True(t, second.Active())
	require.Equal(t, int32(8), DispatchServer(0, 0, ServerRecord{}))

	second.Restore()
	require.True(t, first.Active())
	require.Equal(t, int32(7), DispatchServer(0, 0, ServerRecord{}))

	// Restoring a replaced installation must not clobber the current one.
	third := Install(func(ContextHandle, ConnectionHandle, ServerRecord) int32 { return 9 }, nil)
	second.Restore()
	require.True(t, third.Active())
	require.Equal(t, int32(9), DispatchServer(0, 0, ServerRecord{}))
}

func TestInstallationRemove(t *testing.T) {
	clearEntries(t)

	first := Install(func(ContextHandle, ConnectionHandle, ServerRecord) int32 { return 7 }, nil)
	second := Install(func(ContextHandle, ConnectionHandle, ServerRecord) int32 { return 8 }, nil)

	first.Remove()
	require.Equal(t, int32(8), DispatchServer(0, 0, ServerRecord{}))

	second.Remove()
	require.False(t, second.Active())
	require.Equal(t, csSucceed, DispatchServer(0, 0, ServerRecord{}))

	var zero Installation
	zero.Remove()
	zero.Restore()
	require.False(t, zero.Active())
}

func TestDecodeNilRecord(t *testing.T) {
	_, err := DecodeServerRecord(ServerRecord{})
	require.ErrorIs(t, err, ErrNilRecord)

	_, err = DecodeClientRecord(ClientRecord{})
	require.ErrorIs(t, err, ErrNilRecord)
}

func TestCodeErrorMessage(t *testing.T) {
	err := &CodeError{Op: "ct_init", Code: 0}
	require.Contains(t, err.Error(), "ct_init")
	require.Contains(t, err.Error(), "CS_RETCODE 0")
}

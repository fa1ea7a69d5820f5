package bindings

import "sync/atomic"

// csSucceed mirrors CS_SUCCEED for code that must not import "C".
const csSucceed int32 = 1

// ServerEntry receives server-message callbacks.
type ServerEntry func(ctx ContextHandle, conn ConnectionHandle, rec ServerRecord) int32

// ClientEntry receives client-message callbacks.
type ClientEntry func(ctx ContextHandle, conn ConnectionHandle, rec ClientRecord) int32

type entries struct {
	server ServerEntry
	client ClientEntry
}

var installed atomic.Pointer[entries]

// Installation is one pair of entries set by Install together with the pair
// it replaced.
type Installation struct {
	cur  *entries
	prev *entries
}

// Install sets the functions the native callbacks forward to. It replaces any
// previously installed pair; nil entries make the matching callback answer
// CS_SUCCEED without doing anything.
func Install(srv ServerEntry, clt ClientEntry) Installation {
	e := &entries{server: srv, client: clt}
	return Installation{cur: e, prev: installed.Swap(e)}
}

// Restore puts back the pair this installation replaced. It does nothing if
// another Install happened since.
func (in Installation) Restore() {
	if in.cur == nil {
		return
	}
	installed.CompareAndSwap(in.cur, in.prev)
}

// Remove clears the installed entries if they are still the ones of this
// installation.
func (in Installation) Remove() {
	if in.cur == nil {
		return
	}
	installed.CompareAndSwap(in.cur, nil)
}

// Active reports whether this installation's entries receive the callbacks.
func (in Installation) Active() bool {
	return in.cur != nil && installed.Load() == in.cur
}

// DispatchServer hands a server message to the installed entry, exactly as
// the native callback does.
func DispatchServer(ctx ContextHandle, conn ConnectionHandle, rec ServerRecord) int32 {
	e := installed.Load()
	if e == nil || e.server == nil {
		return csSucceed
	}
	return e.server(ctx, conn, rec)
}

// DispatchClient hands a client message to the installed entry, exactly as
// the native callback does.
func DispatchClient(ctx ContextHandle, conn ConnectionHandle, rec ClientRecord) int32 {
	e := installed.Load()
	if e == nil || e.client == nil {
		return csSucceed
	}
	return e.client(ctx, conn, rec)
}

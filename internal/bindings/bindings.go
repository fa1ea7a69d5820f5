//go:build cgo && ctlib && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo LDFLAGS: -lsybct64 -lsybct_r64 -lsybcs_r64 -lsybtcl_r64 -lsybcomn_r64 -lsybintl_r64 -lsybunic64
#cgo LDFLAGS: -Wl,-rpath,\$ORIGIN/../lib
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import "unsafe"

var contexts = newRegistry()

//export ctmsgServerMessage
func ctmsgServerMessage(ctx *C.CS_CONTEXT, con *C.CS_CONNECTION, msg *C.CS_SERVERMSG) C.CS_RETCODE {
	rec := ServerRecord{ptr: unsafe.Pointer(msg)}
	return C.CS_RETCODE(DispatchServer(ContextHandle(unsafe.Pointer(ctx)), ConnectionHandle(unsafe.Pointer(con)), rec))
}

//export ctmsgClientMessage
func ctmsgClientMessage(ctx *C.CS_CONTEXT, con *C.CS_CONNECTION, msg *C.CS_CLIENTMSG) C.CS_RETCODE {
	rec := ClientRecord{ptr: unsafe.Pointer(msg)}
	return C.CS_RETCODE(DispatchClient(ContextHandle(unsafe.Pointer(ctx)), ConnectionHandle(unsafe.Pointer(con)), rec))
}

func version(cfg Config) C.CS_INT {
	if cfg.Version != 0 {
		return C.CS_INT(cfg.Version)
	}
	return C.CS_CURRENT_VERSION
}

// Open allocates a context, initializes Client-Library on it and registers
// the message callbacks.
func Open(cfg Config) (Handle, error) {
	var ctx *C.CS_CONTEXT
	ver := version(cfg)

	if rc := C.cs_ctx_alloc(ver, &ctx); rc != C.CS_SUCCEED {
		return 0, &CodeError{Op: "cs_ctx_alloc", Code: int32(rc)}
	}

	if rc := C.ct_init(ctx, ver); rc != C.CS_SUCCEED {
		C.cs_ctx_drop(ctx)
		return 0, &CodeError{Op: "ct_init", Code: int32(rc)}
	}

	if rc := C.ctmsg_set_client_cb(ctx); rc != C.CS_SUCCEED {
		exitAndDrop(ctx)
		return 0, &CodeError{Op: "ct_callback(CS_CLIENTMSG_CB)", Code: int32(rc)}
	}

	if rc := C.ctmsg_set_server_cb(ctx); rc != C.CS_SUCCEED {
		exitAndDrop(ctx)
		return 0, &CodeError{Op: "ct_callback(CS_SERVERMSG_CB)", Code: int32(rc)}
	}

	return contexts.put(unsafe.Pointer(ctx)), nil
}

// Close exits Client-Library on the context and releases it. When
// cs_ctx_drop fails after a successful ct_exit, calling Close again only
// retries the drop.
func Close(h Handle) error {
	return contexts.close(h, ctExit, csCtxDrop)
}

func ctExit(p unsafe.Pointer) int32 {
	return int32(C.ct_exit((*C.CS_CONTEXT)(p), C.CS_UNUSED))
}

func csCtxDrop(p unsafe.Pointer) int32 {
	return int32(C.cs_ctx_drop((*C.CS_CONTEXT)(p)))
}

func exitAndDrop(ctx *C.CS_CONTEXT) {
	C.ct_exit(ctx, C.CS_UNUSED)
	C.cs_ctx_drop(ctx)
}

// LibraryVersion returns the Client-Library version string of an open
// context.
func LibraryVersion(h Handle) (string, error) {
	p, ok := contexts.get(h)
	if !ok {
		return "", ErrUnknownHandle
	}
	ctx := (*C.CS_CONTEXT)(p)

	const size = 256
	buf := C.malloc(size)
	defer C.free(buf)

	var outlen C.CS_INT
	if rc := C.ct_config(ctx, C.CS_GET, C.CS_VER_STRING, buf, size, &outlen); rc != C.CS_SUCCEED {
		return "", &CodeError{Op: "ct_config(CS_VER_STRING)", Code: int32(rc)}
	}
	if outlen <= 0 || outlen > size {
		return C.GoString((*C.char)(buf)), nil
	}
	return C.GoStringN((*C.char)(buf), C.int(outlen)), nil
}

// DecodeServerRecord copies the fields of a CS_SERVERMSG.
func DecodeServerRecord(rec ServerRecord) (ServerFields, error) {
	if rec.IsNil() {
		return ServerFields{}, ErrNilRecord
	}
	msg := (*C.CS_SERVERMSG)(rec.ptr)
	return ServerFields{
		MsgNumber: uint64(msg.msgnumber),
		State:     int64(msg.state),
		Severity:  int64(msg.severity),
		Text:      C.GoString((*C.char)(unsafe.Pointer(&msg.text))),
		Server:    C.GoString((*C.char)(unsafe.Pointer(&msg.svrname))),
		Proc:      C.GoString((*C.char)(unsafe.Pointer(&msg.proc))),
		Line:      int64(msg.line),
		SQLState:  C.GoString((*C.char)(unsafe.Pointer(&msg.sqlstate))),
	}, nil
}

// DecodeClientRecord copies the fields of a CS_CLIENTMSG.
func DecodeClientRecord(rec ClientRecord) (ClientFields, error) {
	if rec.IsNil() {
		return ClientFields{}, ErrNilRecord
	}
	msg := (*C.CS_CLIENTMSG)(rec.ptr)
	return ClientFields{
		Severity:  int64(msg.severity),
		MsgNumber: uint64(msg.msgnumber),
		Text:      C.GoString((*C.char)(unsafe.Pointer(&msg.msgstring))),
		OSNumber:  int64(msg.osnumber),
		OSString:  C.GoString((*C.char)(unsafe.Pointer(&msg.osstring))),
		Status:    int64(msg.status),
		SQLState:  C.GoString((*C.char)(unsafe.Pointer(&msg.sqlstate))),
	}, nil
}

package bindings

import (
	"errors"
	"fmt"
	"unsafe"
)

// Config captures the parameters used when allocating the native context.
type Config struct {
	// Version is the CS_VERSION_* value passed to cs_ctx_alloc and ct_init.
	// Zero selects the version the headers were built against.
	Version int32
}

// Handle identifies a native context opened with Open.
type Handle uintptr

// ContextHandle is the CS_CONTEXT pointer a callback was invoked with.
type ContextHandle uintptr

// ConnectionHandle is the CS_CONNECTION pointer a callback was invoked with.
type ConnectionHandle uintptr

// ServerRecord references a CS_SERVERMSG owned by the native library.
type ServerRecord struct {
	ptr unsafe.Pointer
}

// IsNil reports whether the record points nowhere.
func (r ServerRecord) IsNil() bool { return r.ptr == nil }

// ClientRecord references a CS_CLIENTMSG owned by the native library.
type ClientRecord struct {
	ptr unsafe.Pointer
}

// IsNil reports whether the record points nowhere.
func (r ClientRecord) IsNil() bool { return r.ptr == nil }

// ServerFields is a copy of the fields of a CS_SERVERMSG.
type ServerFields struct {
	MsgNumber uint64
	State     int64
	Severity  int64
	Text      string
	Server    string
	Proc      string
	Line      int64
	SQLState  string
}

// ClientFields is a copy of the fields of a CS_CLIENTMSG.
type ClientFields struct {
	Severity  int64
	MsgNumber uint64
	Text      string
	OSNumber  int64
	OSString  string
	Status    int64
	SQLState  string
}

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("ctmsg/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("ctmsg/internal/bindings: cgo not enabled")

	// ErrNilRecord is returned when decoding a record without a message.
	ErrNilRecord = errors.New("ctmsg/internal/bindings: nil message record")

	// ErrUnknownHandle is returned for handles not issued by Open or already
	// closed.
	ErrUnknownHandle = errors.New("ctmsg/internal/bindings: unknown context handle")
)

// CodeError wraps a CS_RETCODE returned by a native call.
type CodeError struct {
	Op   string
	Code int32
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("ctmsg/internal/bindings: %s failed with CS_RETCODE %d", e.Op, e.Code)
}

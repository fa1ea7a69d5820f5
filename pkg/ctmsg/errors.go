package ctmsg

import (
	"errors"

	"github.com/hsiuhsiu/ctmsg-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the binary was built without the ctlib tag.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled reports that the binary was built without cgo.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled

	// ErrNilRecord is returned when decoding a record without a message.
	ErrNilRecord = bindings.ErrNilRecord

	// ErrLibraryClosed is returned by Close on an already closed Library.
	ErrLibraryClosed = errors.New("ctmsg: library already closed")

	// ErrNilHandler is returned by NewBridge when a handler is missing.
	ErrNilHandler = errors.New("ctmsg: nil message handler")
)

// CodeError reports a failed native call together with its CS_RETCODE.
type CodeError struct {
	Op     string
	Status Status
}

func (e *CodeError) Error() string {
	return "ctmsg: " + e.Op + " returned " + e.Status.String()
}

// remapError converts bindings errors to the public error types.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	var ce *bindings.CodeError
	if errors.As(err, &ce) {
		return &CodeError{Op: ce.Op, Status: Status(ce.Code)}
	}
	return err
}

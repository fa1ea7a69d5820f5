// Package bindings is the only package in this module that imports "C". It
// links the Client-Library message callbacks to Go.
//
// # Layout
//
// bridge.c holds the two functions registered with ct_callback. Each one
// forwards its context, connection and message pointers to an exported Go
// function and returns that function's CS_RETCODE unchanged. The exported
// functions wrap the pointers as opaque handles and records and call the
// entries installed with Install.
//
// # Build tags
//
// The native layer compiles only with cgo enabled and the ctlib build tag
// set, because it needs ctpublic.h and the Open Client libraries:
//
//	CGO_CFLAGS="-I$SYBASE/$SYBASE_OCS/include" \
//	CGO_LDFLAGS="-L$SYBASE/$SYBASE_OCS/lib" \
//	go build -tags ctlib ./...
//
// Every other build gets stubs that report ErrNotBuilt or ErrCGONotEnabled.
//
// # Records
//
// ServerRecord and ClientRecord carry the native message pointer. They are
// valid only while the callback runs; DecodeServerRecord and
// DecodeClientRecord copy the fields out into plain Go structs.
package bindings

package ctmsg

import "github.com/hsiuhsiu/ctmsg-go/internal/bindings"

// ContextHandle is the opaque native context a callback was raised on.
type ContextHandle = bindings.ContextHandle

// ConnectionHandle is the opaque native connection a callback was raised on.
type ConnectionHandle = bindings.ConnectionHandle

// Handler processes one message record and reports how the native library
// should proceed.
type Handler[M any] func(msg M) Status

// Bridge holds the two message callbacks of a Client-Library context. S is
// the server message record type, C the client message record type.
//
// A Bridge is immutable after NewBridge and safe for concurrent use.
type Bridge[S, C any] struct {
	srv Handler[S]
	clt Handler[C]
}

// NewBridge returns a Bridge forwarding server messages to srv and client
// messages to clt.
func NewBridge[S, C any](srv Handler[S], clt Handler[C]) (*Bridge[S, C], error) {
	if srv == nil || clt == nil {
		return nil, ErrNilHandler
	}
	return &Bridge[S, C]{srv: srv, clt: clt}, nil
}

// ServerMessage is the server-message callback. The handles are accepted to
// match the native callback shape and are not used.
func (b *Bridge[S, C]) ServerMessage(_ ContextHandle, _ ConnectionHandle, msg S) Status {
	return b.srv(msg)
}

// ClientMessage is the client-message callback. The handles are accepted to
// match the native callback shape and are not used.
func (b *Bridge[S, C]) ClientMessage(_ ContextHandle, _ ConnectionHandle, msg C) Status {
	return b.clt(msg)
}

package fakelib

import (
	"sync"

	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg"
	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg/logging"
)

const (
	// SentinelContext is the context handle every callback is raised with.
	SentinelContext ctmsg.ContextHandle = 0xdead0c7e

	// SentinelConnection is the connection handle every callback is raised
	// with.
	SentinelConnection ctmsg.ConnectionHandle = 0xdead0c0e
)

// ServerRecord plays the part of a CS_SERVERMSG.
type ServerRecord struct {
	Msg ctmsg.ServerMessage
}

// ClientRecord plays the part of a CS_CLIENTMSG.
type ClientRecord struct {
	Msg ctmsg.ClientMessage
}

// Bridge is the bridge type Lib drives.
type Bridge = ctmsg.Bridge[*ServerRecord, *ClientRecord]

// DecodeServer copies the message out of a server record.
func DecodeServer(rec *ServerRecord) (ctmsg.ServerMessage, error) {
	if rec == nil {
		return ctmsg.ServerMessage{}, ctmsg.ErrNilRecord
	}
	return rec.Msg, nil
}

// DecodeClient copies the message out of a client record.
func DecodeClient(rec *ClientRecord) (ctmsg.ClientMessage, error) {
	if rec == nil {
		return ctmsg.ClientMessage{}, ctmsg.ErrNilRecord
	}
	return rec.Msg, nil
}

// Lib raises callbacks on a bridge.
type Lib struct {
	bridge *Bridge

	mu      sync.Mutex
	servers int
	clients int
}

// New returns a Lib raising callbacks on bridge.
func New(bridge *Bridge) *Lib {
	return &Lib{bridge: bridge}
}

// NewDispatching returns a Lib whose bridge uses the default dispatchers,
// publishing on srv and clt.
func NewDispatching(srv, clt *ctmsg.MessageBroker, logger logging.Logger) (*Lib, error) {
	bridge, err := ctmsg.NewBridge(
		ctmsg.ServerDispatcher(DecodeServer, srv, logger),
		ctmsg.ClientDispatcher(DecodeClient, clt, logger),
	)
	if err != nil {
		return nil, err
	}
	return New(bridge), nil
}

// RaiseServer invokes the server-message callback with rec.
func (l *Lib) RaiseServer(rec *ServerRecord) ctmsg.Status {
	l.mu.Lock()
	l.servers++
	l.mu.Unlock()
	return l.bridge.ServerMessage(SentinelContext, SentinelConnection, rec)
}

// RaiseClient invokes the client-message callback with rec.
func (l *Lib) RaiseClient(rec *ClientRecord) ctmsg.Status {
	l.mu.Lock()
	l.clients++
	l.mu.Unlock()
	return l.bridge.ClientMessage(SentinelContext, SentinelConnection, rec)
}

// Raised returns how many server and client callbacks were raised.
func (l *Lib) Raised() (servers, clients int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.servers, l.clients
}

package ctmsg

import (
	"sync"

	"github.com/hsiuhsiu/ctmsg-go/internal/bindings"
	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg/logging"
)

// Library is an open native context with the message callbacks registered.
//
// The native callbacks are process-wide: the brokers of the most recently
// opened Library receive the messages of every open context. A failed Open
// leaves the callbacks of earlier libraries in place.
type Library struct {
	mu      sync.Mutex
	cfg     Config
	handle  bindings.Handle
	entries bindings.Installation
	detach  []func()
	closed  bool
}

// Option customizes Open.
type Option func(*options)

type options struct {
	logger logging.Logger
	srv    *MessageBroker
	clt    *MessageBroker
}

// WithLogger sets the logger used for decode failures and the log sinks
// enabled by Config.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithServerBroker publishes server messages on b instead of
// GlobalServerMessageBroker.
func WithServerBroker(b *MessageBroker) Option {
	return func(o *options) {
		if b != nil {
			o.srv = b
		}
	}
}

// WithClientBroker publishes client messages on b instead of
// GlobalClientMessageBroker.
func WithClientBroker(b *MessageBroker) Option {
	return func(o *options) {
		if b != nil {
			o.clt = b
		}
	}
}

func newNativeBridge(srv, clt *MessageBroker, logger logging.Logger) (*Bridge[bindings.ServerRecord, bindings.ClientRecord], error) {
	return NewBridge(
		ServerDispatcher(DecodeServerRecord, srv, logger),
		ClientDispatcher(DecodeClientRecord, clt, logger),
	)
}

// Open installs the message bridge, allocates a native context and registers
// the callbacks on it.
func Open(cfg Config, opts ...Option) (*Library, error) {
	o := options{
		logger: logging.New(nil),
		srv:    GlobalServerMessageBroker,
		clt:    GlobalClientMessageBroker,
	}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With("component", "ctmsg")

	bridge, err := newNativeBridge(o.srv, o.clt, logger)
	if err != nil {
		return nil, err
	}
	inst := bindings.Install(
		func(ctx bindings.ContextHandle, conn bindings.ConnectionHandle, rec bindings.ServerRecord) int32 {
			return int32(bridge.ServerMessage(ctx, conn, rec))
		},
		func(ctx bindings.ContextHandle, conn bindings.ConnectionHandle, rec bindings.ClientRecord) int32 {
			return int32(bridge.ClientMessage(ctx, conn, rec))
		},
	)

	h, err := bindings.Open(bindings.Config{Version: cfg.NativeVersion})
	if err != nil {
		inst.Restore()
		return nil, remapError(err)
	}

	lib := &Library{cfg: cfg, handle: h, entries: inst}
	if cfg.LogServerMessages {
		lib.detach = append(lib.detach, o.srv.RegisterHandler(cfg.Sink(logger)))
	}
	if cfg.LogClientMessages {
		lib.detach = append(lib.detach, o.clt.RegisterHandler(cfg.Sink(logger)))
	}
	return lib, nil
}

// Sink returns the log handler Open attaches for this configuration.
func (c Config) Sink(logger logging.Logger) MessageHandler {
	h := LogHandler(logger, c.RedactText)
	if !c.LogInform {
		h = SkipSeverity(SeverityInform, h)
	}
	return h
}

// Config returns the configuration the library was opened with.
func (l *Library) Config() Config {
	return l.cfg
}

// Version returns the Client-Library version string.
func (l *Library) Version() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return "", ErrLibraryClosed
	}
	v, err := bindings.LibraryVersion(l.handle)
	return v, remapError(err)
}

// Close exits Client-Library on the context, detaches the sinks added by
// Open and removes the callback entries if no later Library replaced them.
// A second Close returns ErrLibraryClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrLibraryClosed
	}

	if err := bindings.Close(l.handle); err != nil {
		return remapError(err)
	}

	l.entries.Remove()
	for _, d := range l.detach {
		d()
	}
	l.detach = nil
	l.closed = true
	l.handle = 0
	return nil
}
